// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package govdocs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a full match run: the weeding set, the reference
// documents with their per-file layouts, and where to write reports.
type Manifest struct {
	Weeding     string           `yaml:"weeding"`
	SuDocHeader string           `yaml:"sudoc_header,omitempty"`
	Output      string           `yaml:"output,omitempty"`
	References  []ReferenceEntry `yaml:"references"`
}

// ReferenceEntry is one reference document in a manifest. Unset fields
// take the standard FDLP export layout from NewReferenceDoc.
type ReferenceEntry struct {
	Path                 string  `yaml:"path"`
	SkipRows             *int    `yaml:"skip_rows,omitempty"`
	SuDocColumn          *int    `yaml:"sudoc_column,omitempty"`
	ClassificationType   *string `yaml:"classification_type,omitempty"`
	ClassificationColumn *int    `yaml:"classification_column,omitempty"`
	HeaderRow            *int    `yaml:"header_row,omitempty"`
}

// ReferenceDoc resolves the entry into a ReferenceDoc.
func (e ReferenceEntry) ReferenceDoc() ReferenceDoc {
	doc := NewReferenceDoc(e.Path)
	if e.SkipRows != nil {
		doc.SkipRows = *e.SkipRows
	}
	if e.SuDocColumn != nil {
		doc.SuDocColumn = *e.SuDocColumn
	}
	if e.ClassificationType != nil {
		doc.ClassificationType = *e.ClassificationType
	}
	if e.ClassificationColumn != nil {
		doc.ClassificationColumn = *e.ClassificationColumn
	}
	if e.HeaderRow != nil {
		doc.HeaderRow = *e.HeaderRow
	}
	return doc
}

// LoadManifest reads and validates a match manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if m.Weeding == "" {
		return nil, fmt.Errorf("manifest %s: weeding file is required", path)
	}
	if len(m.References) == 0 {
		return nil, fmt.Errorf("manifest %s: at least one reference document is required", path)
	}
	for i, ref := range m.References {
		if ref.Path == "" {
			return nil, fmt.Errorf("manifest %s: references[%d] is missing a path", path, i)
		}
	}

	return &m, nil
}
