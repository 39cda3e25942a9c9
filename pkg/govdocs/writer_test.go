// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package govdocs_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gov-docs-helper/govdocs/pkg/govdocs"
)

func TestWriteMatchReports(t *testing.T) {
	dir := t.TempDir()
	ws := loadTestWeedingSet(t, dir)
	refPath := writeFile(t, dir, "fdlp.csv", referenceCSV)

	s := govdocs.NewSearcher(ws)
	if err := s.Search(govdocs.NewReferenceDoc(refPath)); err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	outDir := filepath.Join(dir, "out", "nested")
	if err := s.WriteMatchReports(outDir); err != nil {
		t.Fatalf("WriteMatchReports() failed: %v", err)
	}

	rows := readCSV(t, filepath.Join(outDir, "matched_fdlp.csv"))
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 match rows, got %d rows", len(rows))
	}

	wantHeader := []string{"Seq", "Type", "Document Number", "Title", "FDLP Row", "SCU Row(s)"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	// A 1.35: sits on reference row 1 and weeding rows 2 and 4.
	wantFirst := []string{"1", "SuDoc", "A 1.35:", "Farm Reports", "1", "2,4"}
	if !reflect.DeepEqual(rows[1], wantFirst) {
		t.Errorf("first match row = %v, want %v", rows[1], wantFirst)
	}

	wantSecond := []string{"3", "SuDoc", "NAS1.2:", "Space Stuff", "3", "3"}
	if !reflect.DeepEqual(rows[2], wantSecond) {
		t.Errorf("second match row = %v, want %v", rows[2], wantSecond)
	}
}

func TestWriteWeedingSplit(t *testing.T) {
	dir := t.TempDir()
	ws := loadTestWeedingSet(t, dir)
	refPath := writeFile(t, dir, "fdlp.csv", referenceCSV)

	s := govdocs.NewSearcher(ws)
	if err := s.Search(govdocs.NewReferenceDoc(refPath)); err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	if err := s.WriteWeedingSplit(outDir); err != nil {
		t.Fatalf("WriteWeedingSplit() failed: %v", err)
	}

	matched := readCSV(t, filepath.Join(outDir, "weeding_matched.csv"))
	if len(matched) != 4 {
		t.Fatalf("matched: expected header + 3 rows, got %d", len(matched))
	}
	if !reflect.DeepEqual(matched[0], []string{"Document Number", "Year(s)", "Title"}) {
		t.Errorf("matched header = %v", matched[0])
	}

	unmatched := readCSV(t, filepath.Join(outDir, "weeding_unmatched.csv"))
	if len(unmatched) != 2 {
		t.Fatalf("unmatched: expected header + 1 row, got %d", len(unmatched))
	}
	if unmatched[1][0] != "B 2.2:" {
		t.Errorf("unmatched row = %v", unmatched[1])
	}
}
