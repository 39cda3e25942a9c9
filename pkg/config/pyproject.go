// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// pyproject mirrors the tool tables of a pyproject.toml that the
// wrapped tools would read themselves. Only the keys the runner passes
// on the command line are decoded.
type pyproject struct {
	Tool struct {
		Black struct {
			LineLength int `toml:"line-length"`
		} `toml:"black"`
		Isort struct {
			Profile string `toml:"profile"`
		} `toml:"isort"`
	} `toml:"tool"`
}

// ApplyPyproject overlays [tool.black] and [tool.isort] settings from
// dir/pyproject.toml onto the config, so the flags the runner passes
// agree with what the tools are configured for. A missing file is not
// an error.
func ApplyPyproject(cfg *Config, dir string) error {
	path := filepath.Join(dir, "pyproject.toml")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var pp pyproject
	if _, err := toml.DecodeFile(path, &pp); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if pp.Tool.Black.LineLength > 0 {
		cfg.Source.LineLength = pp.Tool.Black.LineLength
	}
	if pp.Tool.Isort.Profile != "" {
		cfg.Source.ImportProfile = pp.Tool.Isort.Profile
	}

	return cfg.Validate()
}
