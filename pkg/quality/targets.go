// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package quality defines the project's code-quality targets.
//
// Each target wraps one external tool with fixed flags. Formatting
// targets (black, isort) cover the whole tree; analysis targets (mypy,
// flake8, docstyle, isort --check) are restricted to the configured
// source directory.
package quality

import (
	"fmt"
	"strconv"

	"github.com/gov-docs-helper/govdocs/pkg/config"
	"github.com/gov-docs-helper/govdocs/pkg/task"
)

// Black returns the formatter target. With check set, the formatter
// reports files that would change instead of rewriting them.
func Black(cfg *config.Config, check bool) task.Target {
	name := "black"
	desc := "format code with black"
	args := []string{"--line-length", strconv.Itoa(cfg.Source.LineLength)}
	if check {
		name = "black-check"
		desc = "verify formatting without modifying files"
		args = append(args, "--check")
	}
	args = append(args, cfg.Tools.Black.ExtraArgs...)
	args = append(args, ".")
	return task.Target{
		Name:        name,
		Description: desc,
		Binary:      cfg.Tools.Black.Binary,
		Args:        args,
	}
}

// Isort returns the import sorter target. With check set, the sorter
// diffs rather than rewrites and is restricted to the source directory.
func Isort(cfg *config.Config, check bool) task.Target {
	name := "isort"
	desc := "sort imports with isort"
	args := []string{"--profile", cfg.Source.ImportProfile}
	if check {
		name = "isort-check"
		desc = "verify import order without modifying files"
		args = append(args, "--check", "--diff")
	}
	args = append(args, cfg.Tools.Isort.ExtraArgs...)
	if check {
		args = append(args, cfg.Source.Dir)
	} else {
		args = append(args, ".")
	}
	return task.Target{
		Name:        name,
		Description: desc,
		Binary:      cfg.Tools.Isort.Binary,
		Args:        args,
	}
}

// Mypy returns the static type checker target.
func Mypy(cfg *config.Config) task.Target {
	args := []string{"--show-error-codes", "--ignore-missing-imports"}
	args = append(args, cfg.Tools.Mypy.ExtraArgs...)
	args = append(args, cfg.Source.Dir)
	return task.Target{
		Name:        "mypy",
		Description: "static type checking",
		Binary:      cfg.Tools.Mypy.Binary,
		Args:        args,
	}
}

// Flake8 returns the style checker target.
func Flake8(cfg *config.Config) task.Target {
	args := []string{"--max-line-length", strconv.Itoa(cfg.Source.LineLength)}
	args = append(args, cfg.Tools.Flake8.ExtraArgs...)
	args = append(args, cfg.Source.Dir)
	return task.Target{
		Name:        "flake8",
		Description: "style checking",
		Binary:      cfg.Tools.Flake8.Binary,
		Args:        args,
	}
}

// Docstyle returns the docstring checker target.
func Docstyle(cfg *config.Config) task.Target {
	args := append([]string{}, cfg.Tools.Pydocstyle.ExtraArgs...)
	args = append(args, cfg.Source.Dir)
	return task.Target{
		Name:        "docstyle",
		Description: "docstring checking",
		Binary:      cfg.Tools.Pydocstyle.Binary,
		Args:        args,
	}
}

// CheckSequence returns the check meta-target's sub-targets in run
// order: the analysis tools first, then the non-mutating format
// verifications.
func CheckSequence(cfg *config.Config) []task.Target {
	return []task.Target{
		Mypy(cfg),
		Flake8(cfg),
		Docstyle(cfg),
		Black(cfg, true),
		Isort(cfg, true),
	}
}

// FormatSequence returns the format meta-target's sub-targets. Import
// sorting runs before formatting so the formatter has the final say on
// layout.
func FormatSequence(cfg *config.Config) []task.Target {
	return []task.Target{
		Isort(cfg, false),
		Black(cfg, false),
	}
}

// Targets returns every primitive target by name.
func Targets(cfg *config.Config) map[string]task.Target {
	targets := []task.Target{
		Black(cfg, false),
		Black(cfg, true),
		Isort(cfg, false),
		Isort(cfg, true),
		Mypy(cfg),
		Flake8(cfg),
		Docstyle(cfg),
	}
	byName := make(map[string]task.Target, len(targets))
	for _, t := range targets {
		byName[t.Name] = t
	}
	return byName
}

// Lookup finds a primitive target by name.
func Lookup(cfg *config.Config, name string) (task.Target, error) {
	t, ok := Targets(cfg)[name]
	if !ok {
		return task.Target{}, fmt.Errorf("%w: %s", task.ErrUnknownTarget, name)
	}
	return t, nil
}
