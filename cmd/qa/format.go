// Package main provides the qa CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gov-docs-helper/govdocs/pkg/quality"
)

// formatCmd rewrites the tree: the import sorter runs first, then the
// formatter, so the formatter has the final say on layout.
var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Sort imports and format code",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runner.RunSequence(cmd.Context(), "format", quality.FormatSequence(cfg))
		return err
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
