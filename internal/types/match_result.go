package types

import (
	"encoding/json"
	"fmt"
)

// MatchResult is the immutable outcome of comparing resume skills against job skills.
// Accessors return copies, so callers cannot mutate a result once it is built.
type MatchResult struct {
	matched    SkillSet
	missing    SkillSet
	percentage float64
}

// NewMatchResult builds a MatchResult from the given sets and percentage.
// The sets are copied; nil sets become empty sets.
func NewMatchResult(matched, missing SkillSet, percentage float64) MatchResult {
	return MatchResult{
		matched:    matched.Clone(),
		missing:    missing.Clone(),
		percentage: percentage,
	}
}

// Matched returns the skills present in both the resume and the job description
func (r MatchResult) Matched() SkillSet {
	return r.matched.Clone()
}

// Missing returns the job skills that the resume does not mention
func (r MatchResult) Missing() SkillSet {
	return r.missing.Clone()
}

// Percentage returns 100 * |matched| / |job skills|, or 0 when the job has no skills
func (r MatchResult) Percentage() float64 {
	return r.percentage
}

// String implements fmt.Stringer
func (r MatchResult) String() string {
	return fmt.Sprintf("MatchResult{matched=%v, missing=%v, percentage=%.1f}",
		r.matched.Sorted(), r.missing.Sorted(), r.percentage)
}

type matchResultJSON struct {
	Matched    SkillSet `json:"matched_skills"`
	Missing    SkillSet `json:"missing_skills"`
	Percentage float64  `json:"match_percentage"`
}

// MarshalJSON encodes the result with sorted skill arrays
func (r MatchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(matchResultJSON{
		Matched:    r.matched.Clone(),
		Missing:    r.missing.Clone(),
		Percentage: r.percentage,
	})
}

// UnmarshalJSON decodes a result produced by MarshalJSON
func (r *MatchResult) UnmarshalJSON(data []byte) error {
	var raw matchResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = NewMatchResult(raw.Matched, raw.Missing, raw.Percentage)
	return nil
}
