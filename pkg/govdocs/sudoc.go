// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package govdocs matches a library's weeding set against FDLP
// reference documents by SuDoc number.
package govdocs

import "strings"

// SimplifySuDoc returns the canonical form of a SuDoc number. Spacing
// inside SuDoc numbers varies between catalogs, so matching is done on
// the space-free form.
func SimplifySuDoc(sudoc string) string {
	return strings.ReplaceAll(sudoc, " ", "")
}
