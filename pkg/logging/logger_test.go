// Copyright 2026 Gov Docs Helper Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gov-docs-helper/govdocs/pkg/logging"
)

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter("debug", &buf)

	log.Info("target ok", logging.String("target", "mypy"), logging.Int("exit_code", 0))

	out := buf.String()
	if !strings.Contains(out, "target ok") {
		t.Errorf("missing message: %q", out)
	}
	if !strings.Contains(out, `"target":"mypy"`) {
		t.Errorf("missing target field: %q", out)
	}
	if !strings.Contains(out, `"exit_code":0`) {
		t.Errorf("missing exit_code field: %q", out)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter("error", &buf)

	log.Debug("hidden")
	log.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below error level, got %q", buf.String())
	}

	log.Error("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("error message missing: %q", buf.String())
	}
}

func TestLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter("shout", &buf)

	log.Debug("hidden")
	log.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("info message missing: %q", out)
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter("info", &buf).With(logging.String("sequence", "check"))

	log.Info("running")
	if !strings.Contains(buf.String(), `"sequence":"check"`) {
		t.Errorf("missing bound field: %q", buf.String())
	}
}
