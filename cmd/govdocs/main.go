// Package main is the entry point for the govdocs CLI, which searches
// FDLP reference documents for SuDoc matches against a weeding set.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
