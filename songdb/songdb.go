// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package songdb reads the track metadata tables consumed by the
// songgeo pipeline.
//
// The canonical source is the track metadata SQLite database
// distributed with the Million Song subset, but the same table shape
// is also accepted as a CSV export with a header row. Either way the
// readers hand back raw text cells; typing is the loader's job.
package songdb

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// Columns is the source schema the readers produce, in order.
var Columns = []string{
	"title",
	"release",
	"artist_name",
	"year",
	"artist_hotttnesss",
	"latitude",
	"longitude",
}

// ReadSQLite reads the songs table from the SQLite database at path.
// NULL cells come back as empty strings.
func ReadSQLite(path string) (header []string, rows [][]string, err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	rs, err := db.Query("SELECT " + strings.Join(Columns, ", ") + " FROM songs")
	if err != nil {
		return nil, nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer rs.Close()

	for rs.Next() {
		vals := make([]sql.NullString, len(Columns))
		ptrs := make([]any, len(Columns))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", path, err)
		}
		row := make([]string, len(Columns))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			}
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return append([]string(nil), Columns...), rows, nil
}

// ReadCSV reads the same table shape from a CSV export. The first
// row is the header; it need not match Columns exactly, since the
// loader maps columns by name.
func ReadCSV(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, nil, fmt.Errorf("read %s: missing header row", path)
	}
	return recs[0], recs[1:], nil
}
