// Package main provides the entry point for the resume analyzer CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/vocabulary"
)

// globalOptions holds the persistent flags shared by every subcommand
type globalOptions struct {
	configPath     string
	vocabularyPath string
	logLevel       string
	verbose        bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "resume_analyzer",
		Short: "Resume Analyzer compares resumes against job descriptions",
		Long: `Resume Analyzer extracts known skills from a resume and a job description, scores how well they match,
and produces deterministic suggestions for closing the gap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := opts.logLevel
			if level == "" {
				level = config.LevelWarn
			}
			lvl, err := parseLevel(level)
			if err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), lvl)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&opts.vocabularyPath, "vocabulary", "", "Path to skills JSON (defaults to "+config.VocabularyEnv+" or the embedded list)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newExtractSkillsCmd(opts))
	rootCmd.AddCommand(newListSkillsCmd(opts))

	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file, applies persistent flag and environment
// overrides, fills defaults, and validates the result
func (g *globalOptions) resolveConfig(cmd *cobra.Command, overrides func(cfg *config.Config)) (config.Config, error) {
	var cfg config.Config
	if g.configPath != "" {
		loaded, err := config.LoadConfig(g.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		slog.Debug("loaded config", slog.String("path", g.configPath))
	}

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("vocabulary") {
		cfg.Vocabulary = g.vocabularyPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(g.logLevel)
	}
	if flags.Changed("verbose") {
		cfg.Verbose = g.verbose
	}
	if overrides != nil {
		overrides(&cfg)
	}

	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	// A config file may raise the level set before it was read
	if lvl, err := parseLevel(cfg.LogLevel); err == nil {
		setupLogging(cmd.ErrOrStderr(), lvl)
	}

	return cfg, nil
}

// loadVocabulary returns the configured vocabulary, or the embedded default when no path is set
func loadVocabulary(path string) *vocabulary.Vocabulary {
	if path == "" {
		return vocabulary.Default()
	}
	return vocabulary.NewLazy(vocabulary.FileOpener(path)).Get()
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case config.LevelDebug:
		return slog.LevelDebug, nil
	case config.LevelInfo:
		return slog.LevelInfo, nil
	case config.LevelWarn, "":
		return slog.LevelWarn, nil
	case config.LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", level)
	}
}

func setupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
