package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type listSkillsOptions struct {
	category string
	format   string
}

func newListSkillsCmd(global *globalOptions) *cobra.Command {
	opts := &listSkillsOptions{}

	cmd := &cobra.Command{
		Use:   "list-skills",
		Short: "List every skill the analyzer recognizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListSkills(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Only list skills in this category (case-insensitive)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: text or json (default text)")

	return cmd
}

func runListSkills(cmd *cobra.Command, global *globalOptions, opts *listSkillsOptions) error {
	cfg, err := global.resolveConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("format") {
			cfg.Format = opts.format
		}
	})
	if err != nil {
		return err
	}

	vocab := loadVocabulary(cfg.Vocabulary)
	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintVocabulary(vocab)
	}

	var skills []types.Skill
	if opts.category != "" {
		skills = vocab.ByCategory(opts.category)
		if len(skills) == 0 {
			return fmt.Errorf("unknown category %q; available: %s", opts.category, strings.Join(vocab.Categories(), ", "))
		}
	} else {
		skills = vocab.All()
	}

	if cfg.Format == config.FormatJSON {
		data, err := json.MarshalIndent(skills, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal skills: %w", err)
		}
		return writeOutput(cmd.OutOrStdout(), "", append(data, '\n'))
	}

	var sb strings.Builder
	for _, skill := range skills {
		sb.WriteString(fmt.Sprintf("%-24s %s\n", skill.Name, skill.Category))
	}
	return writeOutput(cmd.OutOrStdout(), "", []byte(sb.String()))
}
