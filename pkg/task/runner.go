// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package task

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/gov-docs-helper/govdocs/pkg/logging"
)

// Runner executes targets sequentially. There is no dependency graph:
// meta-targets are plain ordered lists and the runner stops a sequence
// at the first failing target.
type Runner struct {
	log    logging.Logger
	stdout io.Writer
	stderr io.Writer
	dir    string
	dryRun bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(log logging.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

// WithOutput redirects tool output streams.
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithWorkDir sets the working directory tools run in.
func WithWorkDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.dir = dir
	}
}

// WithDryRun prints command lines without executing them.
func WithDryRun(dryRun bool) RunnerOption {
	return func(r *Runner) {
		r.dryRun = dryRun
	}
}

// NewRunner creates a runner with the given options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		log:    logging.Nop(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a single target and returns its result. A non-zero tool
// exit produces an *ExitError carrying the tool's status.
func (r *Runner) Run(ctx context.Context, target Target) (*Result, error) {
	result := &Result{
		Target: target,
		RunID:  uuid.NewString(),
	}
	log := r.log.With(
		logging.String("target", target.Name),
		logging.String("run_id", result.RunID),
	)

	if r.dryRun {
		result.Skipped = true
		fmt.Fprintf(r.stdout, "[dry-run] %s\n", target.CommandLine())
		return result, nil
	}

	log.Debug("running target", logging.String("command", target.CommandLine()))
	start := time.Now()

	proc := NewToolProcess(target.Binary, target.Args...).
		WithDir(r.dir).
		WithOutput(r.stdout, r.stderr)
	code, err := proc.Run(ctx)

	result.Duration = time.Since(start)
	result.ExitCode = code

	if err != nil {
		log.Error("target failed to run", logging.Err(err), logging.Duration("duration", result.Duration))
		return result, err
	}
	if code != 0 {
		log.Error("target failed", logging.Int("exit_code", code), logging.Duration("duration", result.Duration))
		return result, &ExitError{Target: target.Name, Code: code}
	}

	log.Info("target ok", logging.Duration("duration", result.Duration))
	return result, nil
}

// RunSequence executes targets in order, stopping at the first failure.
// It returns the results of every target that ran, including the failed
// one, and the failure itself.
func (r *Runner) RunSequence(ctx context.Context, name string, targets []Target) ([]*Result, error) {
	log := r.log.With(logging.String("sequence", name))
	log.Debug("running sequence", logging.Int("targets", len(targets)))

	results := make([]*Result, 0, len(targets))
	for _, target := range targets {
		result, err := r.Run(ctx, target)
		results = append(results, result)
		if err != nil {
			return results, fmt.Errorf("sequence %s stopped at %s: %w", name, target.Name, err)
		}
	}
	return results, nil
}
