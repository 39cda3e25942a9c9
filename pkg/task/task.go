// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package task runs named quality targets as external tool processes.
//
// A Target is one external command with fixed arguments. The Runner
// executes targets sequentially, propagating each tool's exit status
// and stopping a sequence at the first failure.
package task

import (
	"strings"
	"time"
)

// Target describes one external tool invocation.
type Target struct {
	// Name identifies the target, e.g. "black-check".
	Name string

	// Description is a one-line summary shown in listings.
	Description string

	// Binary is the tool executable, resolved via PATH.
	Binary string

	// Args are the fixed arguments passed to the tool.
	Args []string
}

// CommandLine returns the full command as it would be typed in a shell.
func (t Target) CommandLine() string {
	if len(t.Args) == 0 {
		return t.Binary
	}
	return t.Binary + " " + strings.Join(t.Args, " ")
}

// Result records the outcome of running a single target.
type Result struct {
	Target   Target
	RunID    string
	ExitCode int
	Duration time.Duration
	Skipped  bool // true under dry-run
}
