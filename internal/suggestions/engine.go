// Package suggestions turns a match result into ordered, deterministic improvement advice.
package suggestions

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// MissingSkillMessage returns the suggestion emitted for a single missing skill
func MissingSkillMessage(skill string) string {
	return fmt.Sprintf("Add hands-on experience with %s to your resume.", skill)
}

// Suggest returns one suggestion per missing skill in alphabetical order, followed by
// the two messages of the tier the match percentage falls into.
// A nil result yields an empty list.
func Suggest(result *types.MatchResult) []string {
	if result == nil {
		return []string{}
	}

	missing := result.Missing().Sorted()
	tierMessages := Messages(TierFor(result.Percentage()))

	out := make([]string, 0, len(missing)+len(tierMessages))
	for _, skill := range missing {
		out = append(out, MissingSkillMessage(skill))
	}
	return append(out, tierMessages...)
}
