// Package main provides the qa CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gov-docs-helper/govdocs/pkg/config"
	"github.com/gov-docs-helper/govdocs/pkg/logging"
	"github.com/gov-docs-helper/govdocs/pkg/task"
	"github.com/gov-docs-helper/govdocs/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qa",
	Short: "Gov Docs Helper quality target runner",
	Long: `qa runs the project's code-quality targets.

Each target wraps one external tool (black, isort, mypy, flake8,
pydocstyle) with the project's fixed flags. The check and format
meta-targets run their sub-targets in order and stop at the first
failure. A failing tool's exit status is propagated unchanged.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// rootFlags holds the global flags.
type rootFlags struct {
	config  string
	srcDir  string
	verbose bool
	dryRun  bool
}

var rootOpts rootFlags

// Shared state built by setup() before any target runs.
var (
	cfg    *config.Config
	log    logging.Logger
	runner *task.Runner
)

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if log != nil {
			log.Error("qa failed", logging.Err(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.config, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&rootOpts.srcDir, "src", "", "Source directory for directory-restricted targets")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&rootOpts.dryRun, "dry-run", false, "Print command lines without executing them")
}

// setup loads configuration and builds the shared runner.
func setup() error {
	var err error
	if rootOpts.config != "" {
		cfg, err = config.Load(rootOpts.config)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	// pyproject.toml settings win over the config file so the flags we
	// pass agree with what the wrapped tools read themselves.
	if err := config.ApplyPyproject(cfg, "."); err != nil {
		return err
	}

	if rootOpts.srcDir != "" {
		cfg.Source.Dir = rootOpts.srcDir
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level := cfg.Global.LogLevel
	if rootOpts.verbose {
		level = "debug"
	}
	log = logging.New(level)

	runner = task.NewRunner(
		task.WithLogger(log),
		task.WithDryRun(rootOpts.dryRun),
	)
	return nil
}
