package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type analyzeOptions struct {
	resume string
	job    string
	format string
	out    string
	cache  bool
}

func newAnalyzeCmd(global *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a resume against a job description",
		Long: `Extracts skills from both documents, computes the match percentage, and prints a report with suggestions.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "Path to resume text file")
	cmd.Flags().StringVarP(&opts.job, "job", "j", "", "Path to job description text file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: text or json (default text)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the output to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.cache, "cache", false, "Cache extraction results by text hash")

	return cmd
}

func runAnalyze(cmd *cobra.Command, global *globalOptions, opts *analyzeOptions) error {
	cfg, err := global.resolveConfig(cmd, func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("resume") {
			cfg.Resume = opts.resume
		}
		if flags.Changed("job") {
			cfg.Job = opts.job
		}
		if flags.Changed("format") {
			cfg.Format = opts.format
		}
		if flags.Changed("out") {
			cfg.Output = opts.out
		}
		if flags.Changed("cache") {
			cfg.Cache = opts.cache
		}
	})
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}

	printer := observability.NewPrinter(cmd.ErrOrStderr())

	resumeDoc, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}
	jobDoc, err := ingestion.IngestFromFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to ingest job description: %w", err)
	}

	vocab := loadVocabulary(cfg.Vocabulary)
	if cfg.Verbose {
		printer.PrintDocument("RESUME", resumeDoc.Metadata)
		printer.PrintDocument("JOB DESCRIPTION", jobDoc.Metadata)
		printer.PrintVocabulary(vocab)
	}

	extractor, err := extraction.New(vocab)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	var skillExtractor analysis.SkillExtractor = extractor
	var cached *extraction.Cached
	if cfg.Cache {
		cached, err = extraction.NewCached(extractor)
		if err != nil {
			return fmt.Errorf("failed to create cached extractor: %w", err)
		}
		skillExtractor = cached
	}

	analyzerOpts := analysis.Options{SkipReport: cfg.Format == config.FormatJSON}
	if cfg.Verbose {
		analyzerOpts.OnProgress = verboseProgress(printer)
	}

	analyzer, err := analysis.NewAnalyzer(skillExtractor, analyzerOpts)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(cmd.Context(), resumeDoc.Text, jobDoc.Text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cached != nil && cfg.Verbose {
		printer.PrintCacheStats(cached.Stats())
	}

	output, err := renderAnalysis(result, cfg.Format)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output, output)
}

// verboseProgress prints the extracted skill sets and the match as boxes.
// Extraction events arrive concurrently, so the printer is not used for them
// until both are complete.
func verboseProgress(printer *observability.Printer) analysis.ProgressCallback {
	var resumeSkills, jobSkills types.SkillSet
	return func(event analysis.ProgressEvent) {
		switch event.Step {
		case analysis.StepExtractResume:
			resumeSkills = skillSetFrom(event.Content)
		case analysis.StepExtractJob:
			jobSkills = skillSetFrom(event.Content)
		case analysis.StepMatch:
			printer.PrintSkillSet("RESUME SKILLS", resumeSkills)
			printer.PrintSkillSet("JOB SKILLS", jobSkills)
			if result, ok := event.Content.(types.MatchResult); ok {
				printer.PrintMatchResult(&result)
			}
		}
	}
}

func skillSetFrom(content any) types.SkillSet {
	names, _ := content.([]string)
	return types.NewSkillSet(names...)
}

// renderAnalysis produces the text report or schema-validated JSON
func renderAnalysis(result *types.Analysis, format string) ([]byte, error) {
	if format != config.FormatJSON {
		return []byte(result.Report), nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := schemas.ValidateBytes(schemas.Analysis, data); err != nil {
		return nil, fmt.Errorf("analysis output failed schema validation: %w", err)
	}
	return append(data, '\n'), nil
}

// writeOutput writes data to path, or to w when path is empty
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
