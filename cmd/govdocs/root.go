// Package main provides the govdocs CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gov-docs-helper/govdocs/pkg/logging"
	"github.com/gov-docs-helper/govdocs/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "govdocs",
	Short: "Gov Docs Helper",
	Long: `Gov Docs Helper searches FDLP reference documents for entries
matching a library's weeding set by SuDoc number, and writes match
reports for review.`,
	Version:      version.FullString(),
	SilenceUsage: true,
}

var verbose bool

// log is built in the persistent pre-run so every command shares it.
var log logging.Logger

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := "info"
		if verbose {
			level = "debug"
		}
		log = logging.New(level)
	}
}
