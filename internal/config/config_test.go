package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"resume": "resume.txt",
		"job": "job.txt",
		"format": " JSON ",
		"log_level": "Debug",
		"cache": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, "job.txt", cfg.Job)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.Cache)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_Enums(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty is valid", Config{}, ""},
		{"defaults are valid", Defaults(), ""},
		{"json format", Config{Format: FormatJSON}, ""},
		{"unknown format", Config{Format: "xml"}, "'format' must be one of [text json]"},
		{"error level", Config{LogLevel: LevelError}, ""},
		{"unknown level", Config{LogLevel: "trace"}, "'log_level' must be one of [debug info warn error]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_MissingFiles(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"resume", Config{Resume: "/nonexistent/resume.txt"}, "resume file not found"},
		{"job", Config{Job: "/nonexistent/job.txt"}, "job file not found"},
		{"vocabulary", Config{Vocabulary: "/nonexistent/skills.json"}, "vocabulary file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	job := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resume, []byte("Java"), 0644))
	require.NoError(t, os.WriteFile(job, []byte("Java"), 0644))

	cfg := &Config{Resume: resume, Job: job}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Resume: "cli-resume.txt",
		Format: FormatJSON,
	}
	defaults := Config{
		Resume:     "file-resume.txt",
		Job:        "file-job.txt",
		Vocabulary: "skills.json",
		Output:     "report.txt",
		Format:     FormatText,
		LogLevel:   LevelInfo,
		Cache:      true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "cli-resume.txt", merged.Resume, "set values win")
	assert.Equal(t, "file-job.txt", merged.Job)
	assert.Equal(t, "skills.json", merged.Vocabulary)
	assert.Equal(t, "report.txt", merged.Output)
	assert.Equal(t, FormatJSON, merged.Format)
	assert.Equal(t, LevelInfo, merged.LogLevel)
	assert.True(t, merged.Cache)
	assert.False(t, merged.Verbose)

	assert.Equal(t, "", cfg.Job, "receiver is not modified")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(VocabularyEnv, " /etc/skills.json ")

	cfg := &Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "/etc/skills.json", cfg.Vocabulary)

	cfg = &Config{Vocabulary: "mine.json"}
	cfg.ApplyEnv()
	assert.Equal(t, "mine.json", cfg.Vocabulary, "explicit path wins over environment")
}
