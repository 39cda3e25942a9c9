// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package govdocs

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Column headers appended to match reports.
const (
	fdlpRowHeader = "FDLP Row"
	scuRowsHeader = "SCU Row(s)"
)

// WriteMatchReports writes one CSV per searched reference document
// into outDir, named matched_<original name>. Each report carries the
// document's headers (when present) extended with "FDLP Row" and
// "SCU Row(s)" columns, and each matching row annotated with its
// original row index and the weeding rows it matched.
func (s *Searcher) WriteMatchReports(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, result := range s.docs {
		var rows [][]string
		if len(result.Headers) > 0 {
			rows = append(rows, append(append([]string{}, result.Headers...), fdlpRowHeader, scuRowsHeader))
		}
		for _, match := range result.Matches {
			sudoc := match.Record[result.Doc.SuDocColumn]
			row := append(append([]string{}, match.Record...),
				strconv.Itoa(match.Row),
				s.weeding.RowNums(sudoc),
			)
			rows = append(rows, row)
		}

		path := filepath.Join(outDir, "matched_"+filepath.Base(result.Doc.Path))
		if err := writeCSV(path, rows); err != nil {
			return err
		}
	}

	return nil
}

// WriteWeedingSplit writes the weeding rows into two CSVs in outDir:
// weeding_matched.csv and weeding_unmatched.csv, each carrying the
// weeding set's header row.
func (s *Searcher) WriteWeedingSplit(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	write := func(name string, weedingRows []WeedingRow) error {
		rows := [][]string{s.weeding.Headers}
		for _, row := range weedingRows {
			rows = append(rows, row.Record)
		}
		return writeCSV(filepath.Join(outDir, name), rows)
	}

	if err := write("weeding_matched.csv", s.matched); err != nil {
		return err
	}
	return write("weeding_unmatched.csv", s.unmatched)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
