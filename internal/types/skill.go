// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Skill represents a recognized technical competency with its canonical display name
type Skill struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category,omitempty"`
}

// String implements fmt.Stringer
func (s Skill) String() string {
	return fmt.Sprintf("Skill{name=%q, category=%q}", s.Name, s.Category)
}

// SkillSet is a set of canonical skill display names.
// The zero value is an empty, read-only set; use NewSkillSet before calling Add.
type SkillSet map[string]struct{}

// NewSkillSet creates a SkillSet containing the given names
func NewSkillSet(names ...string) SkillSet {
	s := make(SkillSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Add inserts a skill name into the set
func (s SkillSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether the set holds the given name. Safe on a nil set.
func (s SkillSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of skills in the set
func (s SkillSet) Len() int {
	return len(s)
}

// Sorted returns the skill names in ascending byte order.
// Always returns a non-nil slice.
func (s SkillSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the set. A nil set clones to an empty set.
func (s SkillSet) Clone() SkillSet {
	out := make(SkillSet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}

// Intersect returns the names present in both s and other
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for name := range s {
		if other.Contains(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// Difference returns the names present in s but not in other
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for name := range s {
		if !other.Contains(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold exactly the same names
func (s SkillSet) Equal(other SkillSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted JSON array
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of names into the set, dropping duplicates
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("skill set must be a JSON array of strings: %w", err)
	}
	*s = NewSkillSet(names...)
	return nil
}
