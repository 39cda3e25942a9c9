// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package govdocs

// NoHeaderRow marks a reference document without a header row.
const NoHeaderRow = -1

// ReferenceDoc describes how to read one FDLP reference CSV. FDLP
// disposal-list exports vary in layout, so each document carries its
// own read options. Row and column indexes are 0-based.
type ReferenceDoc struct {
	// Path is the CSV file to read.
	Path string

	// SkipRows is the number of leading rows to skip before content.
	SkipRows int

	// SuDocColumn is the index of the column holding SuDoc numbers.
	SuDocColumn int

	// ClassificationType, when non-empty, restricts matching to rows
	// whose classification column equals it exactly.
	ClassificationType string

	// ClassificationColumn is the index of the classification column.
	ClassificationColumn int

	// HeaderRow is the index of the header row, or NoHeaderRow.
	HeaderRow int
}

// NewReferenceDoc returns a ReferenceDoc for path with the layout of a
// standard FDLP disposal-list export: one header row, SuDoc numbers in
// the third column, rows classified "SuDoc" in the second.
func NewReferenceDoc(path string) ReferenceDoc {
	return ReferenceDoc{
		Path:                 path,
		SkipRows:             1,
		SuDocColumn:          2,
		ClassificationType:   "SuDoc",
		ClassificationColumn: 1,
		HeaderRow:            0,
	}
}
