// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocabulary"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to maxItemsToShow names as bullets, noting how many were left out
func writeList(sb *strings.Builder, names []string) {
	if len(names) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	count := min(len(names), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", names[i]))
	}
	if len(names) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
	}
}

// PrintDocument outputs the provenance of an ingested document.
func (p *Printer) PrintDocument(title string, meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", meta.Name))
	if meta.Path != "" {
		sb.WriteString(fmt.Sprintf("Path:   %s\n", meta.Path))
	}
	sb.WriteString(fmt.Sprintf("Size:   %d bytes, %d lines\n", meta.Bytes, meta.Lines))
	sb.WriteString(fmt.Sprintf("SHA256: %s", meta.Hash[:min(len(meta.Hash), 16)]))

	p.printBox(title, sb.String())
}

// PrintSkillSet outputs the skills extracted from one document.
func (p *Printer) PrintSkillSet(title string, skills types.SkillSet) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n", skills.Len()))
	writeList(&sb, skills.Sorted())

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score and the matched and missing skills.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %.1f%%\n\n", result.Percentage()))
	sb.WriteString("Matched:\n")
	writeList(&sb, result.Matched().Sorted())
	sb.WriteString("\nMissing:\n")
	writeList(&sb, result.Missing().Sorted())

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVocabulary outputs where the vocabulary came from and its size per category.
func (p *Printer) PrintVocabulary(v *vocabulary.Vocabulary) {
	if v == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", v.Source()))
	sb.WriteString(fmt.Sprintf("Skills: %d\n", v.Count()))

	categories := v.Categories()
	if len(categories) > 0 {
		sb.WriteString("\nCategories:\n")
		for _, category := range categories {
			sb.WriteString(fmt.Sprintf("  • %-16s %d\n", category, len(v.ByCategory(category))))
		}
	}

	if rejected := v.Rejected(); len(rejected) > 0 {
		sb.WriteString(fmt.Sprintf("\nRejected duplicates: %d\n", len(rejected)))
		count := min(len(rejected), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (kept %s)\n", rejected[i].Skill.Name, rejected[i].Existing.Name))
		}
	}

	p.printBox("SKILL VOCABULARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCacheStats outputs extraction cache counters.
func (p *Printer) PrintCacheStats(stats extraction.CacheStats) {
	p.printBox("EXTRACTION CACHE", fmt.Sprintf("Hits:    %d\nMisses:  %d\nEntries: %d",
		stats.Hits, stats.Misses, stats.Entries))
}
