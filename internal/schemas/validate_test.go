package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for _, name := range []string{SkillVocabulary, Analysis} {
		t.Run(name, func(t *testing.T) {
			data, err := Schema(name)
			require.NoError(t, err, "should be able to read embedded schema")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema should be valid JSON")

			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasSchema, "schema should declare $schema")
		})
	}
}

func TestSchema_Unknown(t *testing.T) {
	_, err := Schema("missing.schema.json")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateBytes_SkillVocabulary(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{
			name:     "object with skills",
			document: `{"skills": [{"name": "Java", "category": "Language"}, {"name": "Docker"}]}`,
		},
		{
			name:     "bare array",
			document: `[{"name": "Go"}]`,
		},
		{
			name:     "empty list is structurally valid",
			document: `{"skills": []}`,
		},
		{
			name:      "missing name",
			document:  `{"skills": [{"category": "Cloud"}]}`,
			wantError: true,
		},
		{
			name:      "empty name",
			document:  `{"skills": [{"name": ""}]}`,
			wantError: true,
		},
		{
			name:      "name of wrong type",
			document:  `{"skills": [{"name": 42}]}`,
			wantError: true,
		},
		{
			name:      "skills key absent",
			document:  `{"entries": []}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBytes(SkillVocabulary, []byte(tt.document))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %T: %v", err, err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(SkillVocabulary, []byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateBytes_Analysis(t *testing.T) {
	valid := `{
		"id": "550e8400-e29b-41d4-a716-446655440000",
		"resume_skills": ["Java", "SQL"],
		"job_skills": ["Docker", "Java", "Spring"],
		"result": {"matched_skills": ["Java"], "missing_skills": ["Docker", "Spring"], "match_percentage": 33.3},
		"suggestions": ["Add hands-on experience with Docker to your resume."],
		"created_at": "2026-01-01T00:00:00Z"
	}`
	assert.NoError(t, ValidateBytes(Analysis, []byte(valid)))

	outOfRange := `{
		"id": "550e8400-e29b-41d4-a716-446655440000",
		"resume_skills": [],
		"job_skills": [],
		"result": {"matched_skills": [], "missing_skills": [], "match_percentage": 120},
		"suggestions": [],
		"created_at": "2026-01-01T00:00:00Z"
	}`
	err := ValidateBytes(Analysis, []byte(outOfRange))
	require.Error(t, err)
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestValidateFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": [{"name": "Rust"}]}`), 0644))

	assert.NoError(t, ValidateFile(SkillVocabulary, path))

	err := ValidateFile(SkillVocabulary, filepath.Join(tmpDir, "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`

	assert.NoError(t, ValidateJSONString(schemaContent, `{"name": "test"}`))
}

func TestValidateJSONString_NestedField(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["skill"],
		"properties": {
			"skill": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"skill": {}}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Errors[0].Field, "skill")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "skills.0.name", Message: "is required"},
			{Field: "(root)", Message: "must be an object"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. skills.0.name: is required")
	assert.Contains(t, errorMsg, "2. (root): must be an object")
}
