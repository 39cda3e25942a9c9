// Package main provides the govdocs CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gov-docs-helper/govdocs/pkg/govdocs"
	"github.com/gov-docs-helper/govdocs/pkg/logging"
)

// matchCmd searches reference documents for weeding set matches.
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Search FDLP reference documents for weeding set matches",
	Long: `Search one or more FDLP reference CSVs for rows whose SuDoc number
appears in the weeding set, then write per-document match reports and
a matched/unmatched split of the weeding set.

Reference documents are given either with repeated --reference flags,
all sharing the layout flags below, or with a YAML manifest describing
each document's layout individually.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch()
	},
}

// matchFlags holds the flags for the match command.
type matchFlags struct {
	manifest    string
	weeding     string
	references  []string
	out         string
	sudocHeader string

	// Shared layout for --reference documents.
	skipRows    int
	sudocColumn int
	classType   string
	classColumn int
	headerRow   int
	noHeader    bool
}

var matchOpts matchFlags

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVarP(&matchOpts.manifest, "manifest", "m", "", "YAML manifest describing the match run")
	matchCmd.Flags().StringVarP(&matchOpts.weeding, "weeding", "w", "", "Weeding set CSV file")
	matchCmd.Flags().StringArrayVarP(&matchOpts.references, "reference", "r", nil, "FDLP reference CSV file (repeatable)")
	matchCmd.Flags().StringVarP(&matchOpts.out, "out", "o", "results", "Directory for match reports")
	matchCmd.Flags().StringVar(&matchOpts.sudocHeader, "sudoc-header", govdocs.DefaultSuDocHeader, "Header of the weeding set's SuDoc column")

	matchCmd.Flags().IntVar(&matchOpts.skipRows, "skip-rows", 1, "Leading reference rows to skip")
	matchCmd.Flags().IntVar(&matchOpts.sudocColumn, "sudoc-column", 2, "0-based index of the reference SuDoc column")
	matchCmd.Flags().StringVar(&matchOpts.classType, "class-type", "SuDoc", "Classification type to accept (empty accepts all)")
	matchCmd.Flags().IntVar(&matchOpts.classColumn, "class-column", 1, "0-based index of the classification column")
	matchCmd.Flags().IntVar(&matchOpts.headerRow, "header-row", 0, "0-based index of the reference header row")
	matchCmd.Flags().BoolVar(&matchOpts.noHeader, "no-header", false, "Reference documents have no header row")
}

func runMatch() error {
	weedingPath := matchOpts.weeding
	sudocHeader := matchOpts.sudocHeader
	outDir := matchOpts.out
	var docs []govdocs.ReferenceDoc

	if matchOpts.manifest != "" {
		m, err := govdocs.LoadManifest(matchOpts.manifest)
		if err != nil {
			return err
		}
		weedingPath = m.Weeding
		if m.SuDocHeader != "" {
			sudocHeader = m.SuDocHeader
		}
		if m.Output != "" {
			outDir = m.Output
		}
		for _, ref := range m.References {
			docs = append(docs, ref.ReferenceDoc())
		}
	} else {
		if weedingPath == "" {
			return fmt.Errorf("--weeding is required without a manifest")
		}
		if len(matchOpts.references) == 0 {
			return fmt.Errorf("at least one --reference is required without a manifest")
		}
		for _, path := range matchOpts.references {
			doc := govdocs.NewReferenceDoc(path)
			doc.SkipRows = matchOpts.skipRows
			doc.SuDocColumn = matchOpts.sudocColumn
			doc.ClassificationType = matchOpts.classType
			doc.ClassificationColumn = matchOpts.classColumn
			doc.HeaderRow = matchOpts.headerRow
			if matchOpts.noHeader {
				doc.HeaderRow = govdocs.NoHeaderRow
			}
			docs = append(docs, doc)
		}
	}

	weeding, err := govdocs.LoadWeedingSet(weedingPath, sudocHeader)
	if err != nil {
		return err
	}
	log.Debug("weeding set loaded",
		logging.String("file", weedingPath),
		logging.Int("rows", weeding.Len()),
		logging.Int("sudocs", weeding.NumSuDocs()),
	)

	searcher := govdocs.NewSearcher(weeding)
	if err := searcher.Search(docs...); err != nil {
		return err
	}

	if err := searcher.WriteMatchReports(outDir); err != nil {
		return err
	}
	if err := searcher.WriteWeedingSplit(outDir); err != nil {
		return err
	}

	for _, result := range searcher.Docs() {
		log.Info("reference searched",
			logging.String("file", result.Doc.Path),
			logging.Int("matches", result.NumMatches()),
		)
	}
	fmt.Printf("Found %d matches.\n", searcher.NumMatches())
	return nil
}
