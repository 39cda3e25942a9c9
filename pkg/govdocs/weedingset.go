// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package govdocs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultSuDocHeader is the header of the column holding SuDoc numbers
// in a weeding set export.
const DefaultSuDocHeader = "Document Number"

// ErrHeaderNotFound reports a weeding set file whose header row lacks
// the SuDoc column.
var ErrHeaderNotFound = errors.New("sudoc column header not found")

// WeedingRow is one data row of the weeding set. Num is the 1-based
// row number in the source file, counting the header row as row 1.
type WeedingRow struct {
	Num    int
	Record []string
}

// WeedingSet holds the SuDoc numbers a library wants to locate in the
// FDLP reference documents, loaded from a CSV export of the catalog.
type WeedingSet struct {
	// Headers is the header row of the source file.
	Headers []string

	rows    []WeedingRow
	rowNums map[string]string // canonical SuDoc -> comma-joined row numbers
}

// LoadWeedingSet reads a weeding set CSV. The first row must be a
// header row; sudocHeader selects the SuDoc column by name and
// defaults to DefaultSuDocHeader when empty. A SuDoc number appearing
// on several rows accumulates all of its row numbers.
func LoadWeedingSet(path string, sudocHeader string) (*WeedingSet, error) {
	if sudocHeader == "" {
		sudocHeader = DefaultSuDocHeader
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weeding set: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read weeding set header row: %w", err)
	}

	sudocColumn := -1
	for i, h := range headers {
		if h == sudocHeader {
			sudocColumn = i
			break
		}
	}
	if sudocColumn < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrHeaderNotFound, sudocHeader, path)
	}

	ws := &WeedingSet{
		Headers: headers,
		rowNums: make(map[string]string),
	}

	// Data rows start at 2: the header row is row 1.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read weeding set row %d: %w", rowNum, err)
		}
		if sudocColumn >= len(record) {
			continue
		}

		ws.rows = append(ws.rows, WeedingRow{Num: rowNum, Record: record})

		sudoc := SimplifySuDoc(record[sudocColumn])
		if existing, ok := ws.rowNums[sudoc]; ok {
			ws.rowNums[sudoc] = fmt.Sprintf("%s,%d", existing, rowNum)
		} else {
			ws.rowNums[sudoc] = fmt.Sprintf("%d", rowNum)
		}
	}

	return ws, nil
}

// Contains reports whether the canonical form of sudoc is in the set.
func (ws *WeedingSet) Contains(sudoc string) bool {
	_, ok := ws.rowNums[SimplifySuDoc(sudoc)]
	return ok
}

// RowNums returns the comma-joined row numbers on which the canonical
// form of sudoc appears, or "" when absent.
func (ws *WeedingSet) RowNums(sudoc string) string {
	return ws.rowNums[SimplifySuDoc(sudoc)]
}

// Rows returns the data rows in file order.
func (ws *WeedingSet) Rows() []WeedingRow {
	return ws.rows
}

// Len returns the number of data rows.
func (ws *WeedingSet) Len() int {
	return len(ws.rows)
}

// NumSuDocs returns the number of distinct SuDoc numbers.
func (ws *WeedingSet) NumSuDocs() int {
	return len(ws.rowNums)
}
