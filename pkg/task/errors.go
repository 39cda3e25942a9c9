// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package task

import (
	"errors"
	"fmt"
)

// Exit codes for the qa binary itself. A wrapped tool's non-zero exit
// status is propagated unchanged via ExitError.
const (
	ExitSuccess    = 0 // all targets completed
	ExitInfraError = 1 // tool missing, bad config, or other setup failure
)

// Errors
var (
	ErrToolNotFound      = errors.New("tool binary not found in PATH")
	ErrProcessNotRunning = errors.New("process is not running")
	ErrProcessAlreadyRun = errors.New("process has already been started")
	ErrTimeout           = errors.New("execution timed out")
	ErrUnknownTarget     = errors.New("unknown target")
)

// ExitError reports a wrapped tool exiting with a non-zero status.
// The code is the tool's own exit status and must be propagated
// unchanged to the caller of the qa binary.
type ExitError struct {
	Target string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("target %s failed (exit code %d)", e.Target, e.Code)
}

// ExitCode extracts the process exit code to report for err.
// A nil error is success; an ExitError carries the wrapped tool's
// status; anything else is an infrastructure error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var xerr *ExitError
	if errors.As(err, &xerr) {
		return xerr.Code
	}
	return ExitInfraError
}
