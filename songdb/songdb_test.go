// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package songdb

import (
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func makeDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE songs (
			title TEXT,
			release TEXT,
			artist_name TEXT,
			year INTEGER,
			artist_hotttnesss REAL,
			latitude REAL,
			longitude REAL
		)`,
		`INSERT INTO songs VALUES
			('Silent Night', 'Monster Ballads', 'Faster Pussy cat', 2003, 0.5, 35.5, -90.25),
			('Tanssi vaan', 'Karkuteillä', 'Karkkiautomaatti', 1995, 0.25, NULL, NULL),
			('Insatiable', 'Goodbye', 'Anybody', 0, NULL, 35.5, -90.25)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestReadSQLite(t *testing.T) {
	header, rows, err := ReadSQLite(makeDB(t))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(header, Columns) {
		t.Errorf("header should be %v; got %v", Columns, header)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows; got %d", len(rows))
	}
	if rows[0][0] != "Silent Night" || rows[0][2] != "Faster Pussy cat" {
		t.Errorf("row 0 wrong: %v", rows[0])
	}
	// NULLs read back as empty cells.
	if rows[1][5] != "" || rows[1][6] != "" || rows[2][4] != "" {
		t.Errorf("NULL cells should be empty: %v %v", rows[1], rows[2])
	}
	if rows[0][3] != "2003" {
		t.Errorf("integer year should read as text; got %q", rows[0][3])
	}
}

func TestReadSQLiteMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("CREATE TABLE other (x)"); err != nil {
		t.Fatal(err)
	}
	db.Close()
	if _, _, err := ReadSQLite(path); err == nil {
		t.Error("want error for missing songs table; got nil")
	}
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.csv")
	data := "title,release,artist_name,year,artist_hotttnesss,latitude,longitude\n" +
		"Silent Night,Monster Ballads,Faster Pussy cat,2003,0.5,35.5,-90.25\n"
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	header, rows, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(header, Columns) {
		t.Errorf("header should be %v; got %v", Columns, header)
	}
	if len(rows) != 1 || rows[0][1] != "Monster Ballads" {
		t.Errorf("rows wrong: %v", rows)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0666); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadCSV(path); err == nil {
		t.Error("want error for empty file; got nil")
	}
}
