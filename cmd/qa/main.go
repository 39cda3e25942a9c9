// Package main is the entry point for the qa CLI, the project's
// code-quality target runner.
package main

import (
	"os"

	"github.com/gov-docs-helper/govdocs/pkg/task"
)

func main() {
	if err := Execute(); err != nil {
		// A wrapped tool's exit status propagates unchanged.
		os.Exit(task.ExitCode(err))
	}
}
