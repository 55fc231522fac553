package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
)

const (
	sampleResume = `# Jane Doe

## Experience
• Built Java services backed by SQL databases
• Version control with Git
`
	sampleJob = `Senior Java Developer

We need Java, Spring and Docker experience.
`
)

// executeCommand runs the CLI in-process with no vocabulary override in the environment
// and returns stdout, stderr, and the error
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.VocabularyEnv, "")
	return runRoot(args...)
}

// runRoot runs the CLI in-process using the current environment
func runRoot(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFile writes content to name inside dir and returns the full path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
