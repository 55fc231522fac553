// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// VocabularyEnv names the environment variable that overrides the vocabulary path
const VocabularyEnv = "RESUME_ANALYZER_VOCABULARY"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Log levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume     string `json:"resume,omitempty"`     // Path to resume text file
	Job        string `json:"job,omitempty"`        // Path to job description text file
	Vocabulary string `json:"vocabulary,omitempty"` // Path to skills JSON; embedded list if empty
	Output     string `json:"output,omitempty"`     // Path to write the report; stdout if empty

	// Behavior
	Format   string `json:"format,omitempty" validate:"omitempty,oneof=text json"`
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Cache    bool   `json:"cache,omitempty"`   // Cache extraction results by text hash
	Verbose  bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the configuration used when neither flags nor a file set a value
func Defaults() Config {
	return Config{
		Format:   FormatText,
		LogLevel: LevelWarn,
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' must be one of [%s], got %q",
				jsonName(fe.Field()), fe.Param(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: cannot distinguish unset from false, so true in either wins
	result.Cache = result.Cache || defaults.Cache
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ApplyEnv fills the vocabulary path from the environment when it is not already set
func (c *Config) ApplyEnv() {
	if c.Vocabulary == "" {
		c.Vocabulary = strings.TrimSpace(os.Getenv(VocabularyEnv))
	}
}

// jsonName maps a struct field name to its JSON key for error messages
func jsonName(field string) string {
	switch field {
	case "LogLevel":
		return "log_level"
	default:
		return strings.ToLower(field)
	}
}
