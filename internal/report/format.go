// Package report renders a match result and its suggestions as plain text.
package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	rule  = "=============================="
	title = "AI Resume Analysis Report"
	none  = "None"
)

// Format renders the analysis report. Skill sections are sorted; empty sections
// print "- None". A nil result or nil suggestions renders the empty report.
func Format(result *types.MatchResult, suggestions []string) string {
	if result == nil || suggestions == nil {
		empty := types.NewMatchResult(nil, nil, 0)
		return build(&empty, []string{})
	}
	return build(result, suggestions)
}

func build(result *types.MatchResult, suggestions []string) string {
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(rule + "\n")
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Resume Match Score: %.1f%%\n", result.Percentage())
	sb.WriteString("\n")

	writeSection(&sb, "Matched Skills", result.Matched().Sorted())
	sb.WriteString("\n")

	writeSection(&sb, "Missing Skills", result.Missing().Sorted())
	sb.WriteString("\n")

	writeSection(&sb, "Suggestions", suggestions)

	return sb.String()
}

func writeSection(sb *strings.Builder, heading string, items []string) {
	sb.WriteString(heading + ":\n")
	if len(items) == 0 {
		sb.WriteString("- " + none + "\n")
		return
	}
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
}
