// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package govdocs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gov-docs-helper/govdocs/pkg/govdocs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

const weedingCSV = `Document Number,Year(s),Title
A 1.35:,1999,Farm Reports
NAS 1.2:,2001,Space Stuff
A 1.35:,2002,Farm Reports II
B 2.2:,2003,Budget Summary
`

func TestSimplifySuDoc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A 1.35:", "A1.35:"},
		{"NAS 1.2: 99", "NAS1.2:99"},
		{"A1.35:", "A1.35:"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := govdocs.SimplifySuDoc(tt.in); got != tt.want {
			t.Errorf("SimplifySuDoc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadWeedingSet(t *testing.T) {
	path := writeFile(t, t.TempDir(), "weeding.csv", weedingCSV)

	ws, err := govdocs.LoadWeedingSet(path, "")
	if err != nil {
		t.Fatalf("LoadWeedingSet() failed: %v", err)
	}

	if ws.Len() != 4 {
		t.Errorf("Len() = %d, want 4", ws.Len())
	}
	if ws.NumSuDocs() != 3 {
		t.Errorf("NumSuDocs() = %d, want 3", ws.NumSuDocs())
	}

	// Matching is on the canonical, space-free form.
	if !ws.Contains("A1.35:") {
		t.Error("expected A1.35: to be in the set")
	}
	if !ws.Contains("A 1.35:") {
		t.Error("Contains should canonicalize its argument")
	}
	if ws.Contains("Z 9.9:") {
		t.Error("Z 9.9: should not be in the set")
	}

	// Duplicate SuDoc numbers accumulate row numbers; data rows start
	// at 2 because the header row is row 1.
	if got := ws.RowNums("A 1.35:"); got != "2,4" {
		t.Errorf("RowNums(A 1.35:) = %q, want \"2,4\"", got)
	}
	if got := ws.RowNums("NAS 1.2:"); got != "3" {
		t.Errorf("RowNums(NAS 1.2:) = %q, want \"3\"", got)
	}
}

func TestLoadWeedingSetCustomHeader(t *testing.T) {
	csv := "Call Number,Title\nA 1.35:,Farm Reports\n"
	path := writeFile(t, t.TempDir(), "weeding.csv", csv)

	ws, err := govdocs.LoadWeedingSet(path, "Call Number")
	if err != nil {
		t.Fatalf("LoadWeedingSet() failed: %v", err)
	}
	if !ws.Contains("A1.35:") {
		t.Error("expected A1.35: to be in the set")
	}
}

func TestLoadWeedingSetHeaderNotFound(t *testing.T) {
	path := writeFile(t, t.TempDir(), "weeding.csv", weedingCSV)

	_, err := govdocs.LoadWeedingSet(path, "No Such Column")
	if !errors.Is(err, govdocs.ErrHeaderNotFound) {
		t.Errorf("expected ErrHeaderNotFound, got %v", err)
	}
}

func TestLoadWeedingSetMissingFile(t *testing.T) {
	if _, err := govdocs.LoadWeedingSet(filepath.Join(t.TempDir(), "nope.csv"), ""); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadWeedingSetShortRows(t *testing.T) {
	// A row too short to hold the SuDoc column is skipped.
	csv := "Title,Year,Document Number\nonly-title\nFarm Reports,1999,A 1.35:\n"
	path := writeFile(t, t.TempDir(), "weeding.csv", csv)

	ws, err := govdocs.LoadWeedingSet(path, "")
	if err != nil {
		t.Fatalf("LoadWeedingSet() failed: %v", err)
	}
	if ws.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ws.Len())
	}
	if got := ws.RowNums("A1.35:"); got != "3" {
		t.Errorf("RowNums(A1.35:) = %q, want \"3\"", got)
	}
}
