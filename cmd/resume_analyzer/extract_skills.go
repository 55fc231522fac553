package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

type extractSkillsOptions struct {
	input  string
	format string
}

func newExtractSkillsCmd(global *globalOptions) *cobra.Command {
	opts := &extractSkillsOptions{}

	cmd := &cobra.Command{
		Use:   "extract-skills",
		Short: "List the known skills mentioned in a text file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtractSkills(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to text file (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: text or json (default text)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runExtractSkills(cmd *cobra.Command, global *globalOptions, opts *extractSkillsOptions) error {
	cfg, err := global.resolveConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("format") {
			cfg.Format = opts.format
		}
	})
	if err != nil {
		return err
	}

	doc, err := ingestion.IngestFromFile(opts.input)
	if err != nil {
		return fmt.Errorf("failed to ingest input: %w", err)
	}

	vocab := loadVocabulary(cfg.Vocabulary)
	extractor, err := extraction.New(vocab)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	skills := extractor.Extract(doc.Text)

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintDocument("INPUT", doc.Metadata)
		printer.PrintSkillSet("EXTRACTED SKILLS", skills)
	}

	if cfg.Format == config.FormatJSON {
		data, err := json.MarshalIndent(skills, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal skills: %w", err)
		}
		return writeOutput(cmd.OutOrStdout(), "", append(data, '\n'))
	}

	var sb strings.Builder
	for _, name := range skills.Sorted() {
		sb.WriteString(name + "\n")
	}
	return writeOutput(cmd.OutOrStdout(), "", []byte(sb.String()))
}
