// Package main provides the qa CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gov-docs-helper/govdocs/pkg/quality"
)

// checkCmd runs every non-mutating quality target in order: mypy,
// flake8, docstyle, black --check, isort --check. The sequence stops
// at the first failing target.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run all quality checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := runner.RunSequence(cmd.Context(), "check", quality.CheckSequence(cfg))
		if err != nil {
			return err
		}
		fmt.Printf("check: %d targets passed\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
