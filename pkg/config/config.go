// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration for the quality target runner.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Project Config: ./.govdocs.yaml (searched upward)
// 3. pyproject.toml tool tables ([tool.black], [tool.isort]) if present
// 4. GOVDOCS_CONFIG environment variable (path override)
package config

// Config represents the complete runner configuration.
type Config struct {
	Tools  ToolsConfig  `yaml:"tools"`
	Source SourceConfig `yaml:"source"`
	Global GlobalConfig `yaml:"global"`
}

// ToolsConfig names the wrapped tool binaries. Overriding a binary lets
// the runner target e.g. a virtualenv install or a pinned wrapper.
type ToolsConfig struct {
	Black      ToolConfig `yaml:"black"`
	Isort      ToolConfig `yaml:"isort"`
	Mypy       ToolConfig `yaml:"mypy"`
	Flake8     ToolConfig `yaml:"flake8"`
	Pydocstyle ToolConfig `yaml:"pydocstyle"`
}

// ToolConfig configures a single wrapped tool.
type ToolConfig struct {
	Binary    string   `yaml:"binary"`
	ExtraArgs []string `yaml:"extra_args,omitempty"`
}

// SourceConfig describes the project tree the tools run against.
type SourceConfig struct {
	// Dir is the package directory that directory-restricted targets
	// (mypy, flake8, docstyle, isort --check) are limited to.
	Dir string `yaml:"dir"`

	// LineLength is passed to the formatter and the style checker.
	LineLength int `yaml:"line_length"`

	// ImportProfile is the import sorter's style profile.
	ImportProfile string `yaml:"import_profile"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}
