// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

// DefaultConfig returns the default configuration. These values are
// used when no config file is present and mirror the project's
// historical make targets.
func DefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			Black:      ToolConfig{Binary: "black"},
			Isort:      ToolConfig{Binary: "isort"},
			Mypy:       ToolConfig{Binary: "mypy"},
			Flake8:     ToolConfig{Binary: "flake8"},
			Pydocstyle: ToolConfig{Binary: "pydocstyle"},
		},
		Source: SourceConfig{
			Dir:           "gov_docs_helper",
			LineLength:    88,
			ImportProfile: "black",
		},
		Global: GlobalConfig{
			LogLevel: "info",
		},
	}
}

// applyDefaults fills in zero values after a config file load.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.Tools.Black.Binary == "" {
		cfg.Tools.Black.Binary = def.Tools.Black.Binary
	}
	if cfg.Tools.Isort.Binary == "" {
		cfg.Tools.Isort.Binary = def.Tools.Isort.Binary
	}
	if cfg.Tools.Mypy.Binary == "" {
		cfg.Tools.Mypy.Binary = def.Tools.Mypy.Binary
	}
	if cfg.Tools.Flake8.Binary == "" {
		cfg.Tools.Flake8.Binary = def.Tools.Flake8.Binary
	}
	if cfg.Tools.Pydocstyle.Binary == "" {
		cfg.Tools.Pydocstyle.Binary = def.Tools.Pydocstyle.Binary
	}
	if cfg.Source.Dir == "" {
		cfg.Source.Dir = def.Source.Dir
	}
	if cfg.Source.LineLength == 0 {
		cfg.Source.LineLength = def.Source.LineLength
	}
	if cfg.Source.ImportProfile == "" {
		cfg.Source.ImportProfile = def.Source.ImportProfile
	}
	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = def.Global.LogLevel
	}
}
