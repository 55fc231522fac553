// Package extraction finds vocabulary skills mentioned in free text.
package extraction

import (
	"io"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocabulary"
)

// Extractor turns text into the set of canonical skills it mentions.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	vocab *vocabulary.Vocabulary
	keys  []string
}

// New creates an Extractor over v
func New(v *vocabulary.Vocabulary) (*Extractor, error) {
	if v == nil {
		return nil, &PreconditionError{Message: "cannot build extractor", Cause: ErrNilVocabulary}
	}
	return &Extractor{vocab: v, keys: v.Keys()}, nil
}

// Vocabulary returns the vocabulary the extractor matches against
func (e *Extractor) Vocabulary() *vocabulary.Vocabulary {
	return e.vocab
}

// Extract returns the canonical display names of every vocabulary skill whose key
// appears as a whole token in text. Matching never considers substrings, so
// "javascript" does not yield "Java".
func (e *Extractor) Extract(text string) types.SkillSet {
	found := types.NewSkillSet()

	tokens := vocabulary.Tokens(text)
	if len(tokens) == 0 {
		return found
	}

	present := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		present[token] = struct{}{}
	}

	for _, key := range e.keys {
		if _, ok := present[key]; !ok {
			continue
		}
		if skill, ok := e.vocab.LookupKey(key); ok {
			found.Add(skill.Name)
		}
	}

	return found
}

// ExtractReader reads all of r and extracts skills from it.
// A nil reader is a precondition violation wrapping ErrNilInput.
func (e *Extractor) ExtractReader(r io.Reader) (types.SkillSet, error) {
	if r == nil {
		return nil, &PreconditionError{Message: "no input to extract from", Cause: ErrNilInput}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Message: "failed to read input", Cause: err}
	}

	return e.Extract(string(data)), nil
}
