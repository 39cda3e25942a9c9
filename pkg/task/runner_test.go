// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package task_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gov-docs-helper/govdocs/pkg/task"
)

func TestRunnerRunSuccess(t *testing.T) {
	var out bytes.Buffer
	r := task.NewRunner(task.WithOutput(&out, &out))

	result, err := r.Run(context.Background(), task.Target{
		Name:   "hello",
		Binary: "echo",
		Args:   []string{"hi"},
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", result.ExitCode)
	}
	if result.RunID == "" {
		t.Error("expected a run ID")
	}
	if result.Skipped {
		t.Error("result should not be marked skipped")
	}
}

func TestRunnerRunFailureReturnsExitError(t *testing.T) {
	var out bytes.Buffer
	r := task.NewRunner(task.WithOutput(&out, &out))

	result, err := r.Run(context.Background(), task.Target{
		Name:   "failing",
		Binary: "sh",
		Args:   []string{"-c", "exit 2"},
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	var xerr *task.ExitError
	if !errors.As(err, &xerr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if xerr.Code != 2 || xerr.Target != "failing" {
		t.Errorf("unexpected ExitError: %+v", xerr)
	}
	if result.ExitCode != 2 {
		t.Errorf("result exit code = %d, want 2", result.ExitCode)
	}
}

func TestRunnerSequenceFailFast(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "marker")
	var out bytes.Buffer
	r := task.NewRunner(task.WithOutput(&out, &out))

	targets := []task.Target{
		{Name: "first", Binary: "echo", Args: []string{"first"}},
		{Name: "second", Binary: "sh", Args: []string{"-c", "exit 1"}},
		{Name: "third", Binary: "touch", Args: []string{marker}},
	}

	results, err := r.RunSequence(context.Background(), "check", targets)
	if err == nil {
		t.Fatal("expected sequence to fail")
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results (third target must not run), got %d", len(results))
	}
	if _, statErr := os.Stat(marker); !os.IsNotExist(statErr) {
		t.Error("third target ran after a failure")
	}
	if task.ExitCode(err) != 1 {
		t.Errorf("ExitCode(err) = %d, want 1", task.ExitCode(err))
	}
}

func TestRunnerSequenceOrder(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "order.log")
	var out bytes.Buffer
	r := task.NewRunner(task.WithOutput(&out, &out))

	targets := []task.Target{
		{Name: "a", Binary: "sh", Args: []string{"-c", "echo a >> " + logFile}},
		{Name: "b", Binary: "sh", Args: []string{"-c", "echo b >> " + logFile}},
		{Name: "c", Binary: "sh", Args: []string{"-c", "echo c >> " + logFile}},
	}

	results, err := r.RunSequence(context.Background(), "format", targets)
	if err != nil {
		t.Fatalf("RunSequence() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read order log: %v", err)
	}
	if got := strings.Fields(string(data)); strings.Join(got, " ") != "a b c" {
		t.Errorf("targets ran out of order: %v", got)
	}
}

func TestRunnerDryRun(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "marker")
	var out bytes.Buffer
	r := task.NewRunner(task.WithOutput(&out, &out), task.WithDryRun(true))

	result, err := r.Run(context.Background(), task.Target{
		Name:   "touch",
		Binary: "touch",
		Args:   []string{marker},
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !result.Skipped {
		t.Error("dry-run result should be marked skipped")
	}
	if _, statErr := os.Stat(marker); !os.IsNotExist(statErr) {
		t.Error("dry-run executed the target")
	}
	if !strings.Contains(out.String(), "touch "+marker) {
		t.Errorf("dry-run did not print the command line: %q", out.String())
	}
}

func TestRunnerWorkDir(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := task.NewRunner(task.WithOutput(&out, &out), task.WithWorkDir(dir))

	if _, err := r.Run(context.Background(), task.Target{Name: "pwd", Binary: "pwd"}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	got := strings.TrimSpace(out.String())
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}
	if got != dir && got != resolved {
		t.Errorf("pwd = %q, want %q", got, dir)
	}
}

func TestExitCodeClassification(t *testing.T) {
	if got := task.ExitCode(nil); got != task.ExitSuccess {
		t.Errorf("ExitCode(nil) = %d, want %d", got, task.ExitSuccess)
	}
	if got := task.ExitCode(&task.ExitError{Target: "mypy", Code: 7}); got != 7 {
		t.Errorf("ExitCode(ExitError{7}) = %d, want 7", got)
	}
	if got := task.ExitCode(errors.New("boom")); got != task.ExitInfraError {
		t.Errorf("ExitCode(other) = %d, want %d", got, task.ExitInfraError)
	}
}
