// Package ingestion reads resume and job description documents and normalizes their text
// before skill extraction.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	multiSpace  = regexp.MustCompile(`\s+`)
	blankLines  = regexp.MustCompile(`\n\n\n+`)
	bulletGlyph = regexp.MustCompile(`^[•·▪●◦‣]\s*`)
)

// MaxDocumentBytes bounds the size of a single ingested document
const MaxDocumentBytes = 4 << 20

// Document is a cleaned text document with its provenance
type Document struct {
	Text     string
	Metadata *Metadata
}

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving headings and bullets
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	// Markdown headings lose their indentation
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Markdown bullets keep their marker; glyph bullets from resume exports become "- "
	if isBulletLine(trimmed) {
		marker := "- "
		if strings.HasPrefix(trimmed, "* ") {
			marker = "* "
		}
		body := multiSpace.ReplaceAllString(strings.TrimSpace(bulletBody(trimmed)), " ")
		return strings.Repeat(" ", indent) + marker + body
	}

	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		bulletGlyph.MatchString(trimmed)
}

// bulletBody strips the bullet marker from a bullet line
func bulletBody(line string) string {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return line[2:]
	}
	return bulletGlyph.ReplaceAllString(line, "")
}

// IngestFromFile reads a text file, cleans it, and returns the document with metadata
func IngestFromFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := IngestFromReader(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	doc.Metadata.Path = path
	return doc, nil
}

// IngestFromReader reads up to MaxDocumentBytes from r and cleans it
func IngestFromReader(r io.Reader, name string) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("no input for %s", name)
	}

	content, err := io.ReadAll(io.LimitReader(r, MaxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(content) > MaxDocumentBytes {
		return nil, fmt.Errorf("%s exceeds %d bytes", name, MaxDocumentBytes)
	}

	cleanedText := CleanText(string(content))
	return &Document{
		Text:     cleanedText,
		Metadata: NewMetadata(cleanedText, name),
	}, nil
}
