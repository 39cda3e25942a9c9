// Package main provides the qa CLI application.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gov-docs-helper/govdocs/pkg/quality"
)

// listCmd prints every primitive target with its resolved command line.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List targets and their command lines",
	Run: func(cmd *cobra.Command, args []string) {
		targets := quality.Targets(cfg)
		names := make([]string, 0, len(targets))
		for name := range targets {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			t := targets[name]
			fmt.Printf("%-12s %s\n", t.Name, t.CommandLine())
		}
		fmt.Printf("%-12s %s\n", "check", "mypy, flake8, docstyle, black-check, isort-check")
		fmt.Printf("%-12s %s\n", "format", "isort, black")
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
