// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package task

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
)

// ToolProcess manages a single external tool subprocess.
type ToolProcess struct {
	mu sync.RWMutex

	cmd    *exec.Cmd
	binary string
	args   []string
	dir    string

	stdout io.Writer
	stderr io.Writer

	started bool
	exited  bool

	// Wait channel
	waitCh   chan error
	exitCode int
}

// NewToolProcess creates a process for the given binary and arguments.
// Output goes to the parent's stdout/stderr unless redirected with
// WithOutput.
func NewToolProcess(binary string, args ...string) *ToolProcess {
	return &ToolProcess{
		binary: binary,
		args:   args,
		stdout: os.Stdout,
		stderr: os.Stderr,
		waitCh: make(chan error, 1),
	}
}

// WithDir sets the working directory for the process.
func (p *ToolProcess) WithDir(dir string) *ToolProcess {
	p.dir = dir
	return p
}

// WithOutput redirects the process output streams.
func (p *ToolProcess) WithOutput(stdout, stderr io.Writer) *ToolProcess {
	p.stdout = stdout
	p.stderr = stderr
	return p
}

// Start starts the tool process.
func (p *ToolProcess) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return ErrProcessAlreadyRun
	}

	if _, err := exec.LookPath(p.binary); err != nil {
		return fmt.Errorf("%s: %w", p.binary, ErrToolNotFound)
	}

	p.cmd = exec.CommandContext(ctx, p.binary, p.args...)
	p.cmd.Dir = p.dir
	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr

	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.binary, err)
	}

	p.started = true

	go func() {
		err := p.cmd.Wait()
		p.mu.Lock()
		p.exited = true
		if p.cmd.ProcessState != nil {
			p.exitCode = p.cmd.ProcessState.ExitCode()
		}
		p.mu.Unlock()
		p.waitCh <- err
	}()

	return nil
}

// Wait waits for the process to complete and returns its exit code.
// A non-zero exit from the tool is not an error here; the caller
// decides how to classify it.
func (p *ToolProcess) Wait(ctx context.Context) (int, error) {
	p.mu.RLock()
	started := p.started
	p.mu.RUnlock()
	if !started {
		return ExitInfraError, ErrProcessNotRunning
	}

	select {
	case err := <-p.waitCh:
		p.mu.RLock()
		exitCode := p.exitCode
		p.mu.RUnlock()

		if err != nil {
			if ctx.Err() != nil {
				return ExitInfraError, ErrTimeout
			}
			var xerr *exec.ExitError
			if errors.As(err, &xerr) {
				return exitCode, nil
			}
			return ExitInfraError, fmt.Errorf("%s: %w", p.binary, err)
		}
		return exitCode, nil

	case <-ctx.Done():
		_ = p.Kill()
		return ExitInfraError, ErrTimeout
	}
}

// Run starts the process and waits for it to finish.
func (p *ToolProcess) Run(ctx context.Context) (int, error) {
	if err := p.Start(ctx); err != nil {
		return ExitInfraError, err
	}
	return p.Wait(ctx)
}

// Stop gracefully stops the process.
func (p *ToolProcess) Stop() error {
	p.mu.RLock()
	if !p.started || p.exited {
		p.mu.RUnlock()
		return nil
	}
	cmd := p.cmd
	p.mu.RUnlock()

	if cmd.Process == nil {
		return nil
	}

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		// Process might have already exited
		if !strings.Contains(err.Error(), "process already finished") {
			return fmt.Errorf("failed to send SIGTERM: %w", err)
		}
	}
	return nil
}

// Kill forcefully kills the process.
func (p *ToolProcess) Kill() error {
	p.mu.RLock()
	if !p.started || p.exited {
		p.mu.RUnlock()
		return nil
	}
	cmd := p.cmd
	p.mu.RUnlock()

	if cmd.Process == nil {
		return nil
	}

	if err := cmd.Process.Kill(); err != nil {
		if !strings.Contains(err.Error(), "process already finished") {
			return fmt.Errorf("failed to kill process: %w", err)
		}
	}
	return nil
}

// IsRunning checks if the process is running.
func (p *ToolProcess) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.started && !p.exited
}

// ExitCode returns the process exit code.
func (p *ToolProcess) ExitCode() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exitCode
}
