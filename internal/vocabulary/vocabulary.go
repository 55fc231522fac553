// Package vocabulary holds the canonical set of recognized skills and the normalization
// rules used to look them up.
//
// A Vocabulary is built once and is read-only afterwards, so it is safe to share
// between goroutines without locking.
//
// When two entries normalize to the same key, the first registration wins and the
// later entry is rejected. Rejections are logged and reported by Rejected.
package vocabulary

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Source identifies where a Vocabulary's entries came from
type Source string

const (
	// SourceConfigured means the entries were parsed from a configuration source
	SourceConfigured Source = "configured"
	// SourceFallback means the built-in list was used
	SourceFallback Source = "fallback"
)

// Rejection records an entry dropped because its key was already registered
type Rejection struct {
	Skill    types.Skill
	Key      string
	Existing types.Skill
}

// Vocabulary maps normalized keys to canonical skills
type Vocabulary struct {
	byKey    map[string]types.Skill
	byName   map[string]types.Skill
	keys     []string
	rejected []Rejection
	source   Source
}

// newVocabulary registers entries in order, keeping the first skill for each key
func newVocabulary(entries []types.Skill, source Source) *Vocabulary {
	v := &Vocabulary{
		byKey:  make(map[string]types.Skill, len(entries)),
		byName: make(map[string]types.Skill, len(entries)),
		source: source,
	}

	for _, entry := range entries {
		key := NormalizeKey(entry.Name)
		if key == "" {
			slog.Debug("vocabulary: skipping skill with empty key", slog.String("name", entry.Name))
			continue
		}
		if existing, ok := v.byKey[key]; ok {
			slog.Warn("vocabulary: duplicate skill key rejected",
				slog.String("name", entry.Name),
				slog.String("key", key),
				slog.String("kept", existing.Name))
			v.rejected = append(v.rejected, Rejection{Skill: entry, Key: key, Existing: existing})
			continue
		}
		v.byKey[key] = entry
		v.byName[entry.Name] = entry
		v.keys = append(v.keys, key)
	}

	sort.Strings(v.keys)
	return v
}

// Lookup normalizes token and returns the skill registered under that key
func (v *Vocabulary) Lookup(token string) (types.Skill, bool) {
	key := NormalizeKey(token)
	if key == "" {
		return types.Skill{}, false
	}
	skill, ok := v.byKey[key]
	return skill, ok
}

// LookupKey returns the skill registered under an already-normalized key
func (v *Vocabulary) LookupKey(key string) (types.Skill, bool) {
	skill, ok := v.byKey[key]
	return skill, ok
}

// Skill returns the skill with the exact canonical display name
func (v *Vocabulary) Skill(name string) (types.Skill, bool) {
	skill, ok := v.byName[name]
	return skill, ok
}

// All returns every registered skill sorted by display name
func (v *Vocabulary) All() []types.Skill {
	skills := make([]types.Skill, 0, len(v.byKey))
	for _, skill := range v.byKey {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Name < skills[j].Name
	})
	return skills
}

// ByCategory returns the skills in a category (case-insensitive), sorted by display name
func (v *Vocabulary) ByCategory(category string) []types.Skill {
	out := make([]types.Skill, 0)
	for _, skill := range v.All() {
		if strings.EqualFold(skill.Category, category) {
			out = append(out, skill)
		}
	}
	return out
}

// Categories returns the distinct categories in sorted order
func (v *Vocabulary) Categories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, skill := range v.byKey {
		if !seen[skill.Category] {
			seen[skill.Category] = true
			categories = append(categories, skill.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// Keys returns the normalized keys in sorted order
func (v *Vocabulary) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Count returns the number of registered skills
func (v *Vocabulary) Count() int {
	return len(v.byKey)
}

// Source reports whether the entries came from configuration or the built-in list
func (v *Vocabulary) Source() Source {
	return v.source
}

// Rejected returns the entries dropped by the keep-first duplicate policy
func (v *Vocabulary) Rejected() []Rejection {
	out := make([]Rejection, len(v.rejected))
	copy(out, v.rejected)
	return out
}
