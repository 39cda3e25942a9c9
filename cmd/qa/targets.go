// Package main provides the qa CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gov-docs-helper/govdocs/pkg/quality"
)

// blackCmd runs the formatter. --check verifies without modifying.
var blackCmd = &cobra.Command{
	Use:   "black",
	Short: "Format code with black",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runner.Run(cmd.Context(), quality.Black(cfg, blackCheck))
		return err
	},
}

var blackCheck bool

// isortCmd runs the import sorter. --check diffs without modifying and
// is restricted to the source directory.
var isortCmd = &cobra.Command{
	Use:   "isort",
	Short: "Sort imports with isort",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runner.Run(cmd.Context(), quality.Isort(cfg, isortCheck))
		return err
	},
}

var isortCheck bool

var mypyCmd = &cobra.Command{
	Use:   "mypy",
	Short: "Run static type checking",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runner.Run(cmd.Context(), quality.Mypy(cfg))
		return err
	},
}

var flake8Cmd = &cobra.Command{
	Use:   "flake8",
	Short: "Run style checking",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runner.Run(cmd.Context(), quality.Flake8(cfg))
		return err
	},
}

var docstyleCmd = &cobra.Command{
	Use:   "docstyle",
	Short: "Run docstring checking",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runner.Run(cmd.Context(), quality.Docstyle(cfg))
		return err
	},
}

func init() {
	blackCmd.Flags().BoolVar(&blackCheck, "check", false, "Report files that would change without rewriting them")
	isortCmd.Flags().BoolVar(&isortCheck, "check", false, "Diff import order without rewriting files")

	rootCmd.AddCommand(blackCmd)
	rootCmd.AddCommand(isortCmd)
	rootCmd.AddCommand(mypyCmd)
	rootCmd.AddCommand(flake8Cmd)
	rootCmd.AddCommand(docstyleCmd)
}
