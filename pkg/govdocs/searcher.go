// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package govdocs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Match is one reference-document row whose SuDoc number appears in
// the weeding set. Row is the 0-based row index in the source file.
type Match struct {
	Row    int
	Record []string
}

// DocResult accumulates what the searcher found in one reference doc.
type DocResult struct {
	Doc     ReferenceDoc
	Headers []string
	Matches []Match
}

// NumMatches returns the number of matching rows in this document.
func (d *DocResult) NumMatches() int {
	return len(d.Matches)
}

// Searcher scans FDLP reference documents for rows whose SuDoc numbers
// appear in the weeding set, then splits the weeding rows into matched
// and unmatched.
type Searcher struct {
	weeding *WeedingSet

	docs               []*DocResult
	matchedWeedingRows map[int]bool
	matched            []WeedingRow
	unmatched          []WeedingRow
}

// NewSearcher creates a searcher over the given weeding set.
func NewSearcher(weeding *WeedingSet) *Searcher {
	return &Searcher{
		weeding:            weeding,
		matchedWeedingRows: make(map[int]bool),
	}
}

// Search scans the given reference documents. Any previous search
// state is discarded, so a Searcher can be reused.
func (s *Searcher) Search(docs ...ReferenceDoc) error {
	s.reset()
	for _, doc := range docs {
		if err := s.readDoc(doc); err != nil {
			return err
		}
	}
	s.separateRows()
	return nil
}

// Docs returns per-document results in the order searched.
func (s *Searcher) Docs() []*DocResult {
	return s.docs
}

// MatchedRows returns the weeding rows that matched some reference row.
func (s *Searcher) MatchedRows() []WeedingRow {
	return s.matched
}

// UnmatchedRows returns the weeding rows with no reference match.
func (s *Searcher) UnmatchedRows() []WeedingRow {
	return s.unmatched
}

// NumMatches returns the total matching reference rows across all docs.
func (s *Searcher) NumMatches() int {
	n := 0
	for _, doc := range s.docs {
		n += len(doc.Matches)
	}
	return n
}

func (s *Searcher) reset() {
	s.docs = nil
	s.matchedWeedingRows = make(map[int]bool)
	s.matched = nil
	s.unmatched = nil
}

func (s *Searcher) readDoc(doc ReferenceDoc) error {
	result := &DocResult{Doc: doc}
	s.docs = append(s.docs, result)

	f, err := os.Open(doc.Path)
	if err != nil {
		return fmt.Errorf("failed to open reference doc: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	for rowIndex := 0; ; rowIndex++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read %s row %d: %w", doc.Path, rowIndex, err)
		}

		if doc.HeaderRow != NoHeaderRow && rowIndex == doc.HeaderRow {
			result.Headers = record
			continue
		}
		if rowIndex < doc.SkipRows {
			continue
		}
		// Rows too short to hold the referenced columns are skipped.
		if doc.SuDocColumn >= len(record) {
			continue
		}
		if doc.ClassificationType != "" {
			if doc.ClassificationColumn >= len(record) {
				continue
			}
			if record[doc.ClassificationColumn] != doc.ClassificationType {
				continue
			}
		}

		sudoc := SimplifySuDoc(record[doc.SuDocColumn])
		if !s.weeding.Contains(sudoc) {
			continue
		}

		result.Matches = append(result.Matches, Match{Row: rowIndex, Record: record})
		for _, num := range strings.Split(s.weeding.RowNums(sudoc), ",") {
			rowNum, err := strconv.Atoi(num)
			if err != nil {
				return fmt.Errorf("invalid weeding row number %q for sudoc %s: %w", num, sudoc, err)
			}
			s.matchedWeedingRows[rowNum] = true
		}
	}

	return nil
}

// separateRows splits the weeding rows into matched and unmatched,
// preserving file order.
func (s *Searcher) separateRows() {
	for _, row := range s.weeding.Rows() {
		if s.matchedWeedingRows[row.Num] {
			s.matched = append(s.matched, row)
		} else {
			s.unmatched = append(s.unmatched, row)
		}
	}
}
