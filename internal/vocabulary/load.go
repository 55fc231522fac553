package vocabulary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// defaultCategory is assigned to configured entries that omit a category
const defaultCategory = "Uncategorized"

var validate = validator.New()

// vocabularyFile is the object form of a vocabulary source
type vocabularyFile struct {
	Skills []types.Skill `json:"skills"`
}

// Load builds a Vocabulary from a JSON source.
// It never fails: a nil source, a read error, an invalid document or a document with no
// usable entries is logged as a warning and the built-in list is used instead.
func Load(r io.Reader) *Vocabulary {
	if r == nil {
		slog.Warn("vocabulary: no source available, using fallback skill set")
		return Fallback()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		slog.Warn("vocabulary: failed to read source, using fallback skill set", slog.Any("error", err))
		return Fallback()
	}

	return FromBytes(data)
}

// LoadFile builds a Vocabulary from a JSON file, degrading to the built-in list like Load
func LoadFile(path string) *Vocabulary {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("vocabulary: failed to open source, using fallback skill set",
			slog.String("path", path), slog.Any("error", err))
		return Fallback()
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// FromBytes builds a Vocabulary from JSON content, degrading to the built-in list like Load
func FromBytes(data []byte) *Vocabulary {
	entries, err := Parse(data)
	if err != nil {
		slog.Warn("vocabulary: invalid source, using fallback skill set", slog.Any("error", err))
		return Fallback()
	}

	v := newVocabulary(entries, SourceConfigured)
	if v.Count() == 0 {
		slog.Warn("vocabulary: source produced no usable skills, using fallback skill set")
		return Fallback()
	}

	slog.Debug("vocabulary: loaded skills from source",
		slog.Int("count", v.Count()), slog.Int("rejected", len(v.rejected)))
	return v
}

// Parse validates and decodes a vocabulary document.
// Accepts {"skills": [{"name": ..., "category": ...}]} or a bare array of entries.
// Names and categories are trimmed; blank names are skipped and a missing category
// becomes "Uncategorized". Returns a *LoadError when nothing usable remains.
func Parse(data []byte) ([]types.Skill, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &LoadError{Message: "source is empty"}
	}

	if err := schemas.ValidateBytes(schemas.SkillVocabulary, trimmed); err != nil {
		return nil, &LoadError{Message: "source failed schema validation", Cause: err}
	}

	var raw []types.Skill
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, &LoadError{Message: "failed to parse skill list", Cause: err}
		}
	} else {
		var file vocabularyFile
		if err := json.Unmarshal(trimmed, &file); err != nil {
			return nil, &LoadError{Message: "failed to parse skill list", Cause: err}
		}
		raw = file.Skills
	}

	entries := make([]types.Skill, 0, len(raw))
	for i, entry := range raw {
		entry.Name = strings.TrimSpace(entry.Name)
		entry.Category = strings.TrimSpace(entry.Category)
		if entry.Category == "" {
			entry.Category = defaultCategory
		}
		if err := validate.Struct(entry); err != nil {
			slog.Debug("vocabulary: skipping invalid entry", slog.Int("index", i), slog.Any("error", err))
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, &LoadError{Message: fmt.Sprintf("no skills found in %d entries", len(raw))}
	}

	return entries, nil
}
