// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"fmt"
	"strings"
)

// MaxLineLength is the largest line length the formatter targets accept.
const MaxLineLength = 500

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Source.Dir == "" {
		return fmt.Errorf("source.dir must not be empty")
	}
	if strings.HasPrefix(c.Source.Dir, "/") {
		return fmt.Errorf("source.dir must be relative to the project root, got %q", c.Source.Dir)
	}
	if c.Source.LineLength <= 0 || c.Source.LineLength > MaxLineLength {
		return fmt.Errorf("source.line_length must be in 1..%d, got %d", MaxLineLength, c.Source.LineLength)
	}
	if c.Source.ImportProfile == "" {
		return fmt.Errorf("source.import_profile must not be empty")
	}
	if !validLogLevels[c.Global.LogLevel] {
		return fmt.Errorf("global.log_level must be one of debug, info, warn, error; got %q", c.Global.LogLevel)
	}
	return nil
}
