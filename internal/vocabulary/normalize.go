package vocabulary

import (
	"strings"
)

// NormalizeKey reduces a skill name to its compact lookup key: lowercase with every
// character outside [a-z0-9] removed ("Spring Boot" -> "springboot", "C++" -> "c").
func NormalizeKey(name string) string {
	lower := strings.ToLower(name)
	var sb strings.Builder
	sb.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		if isKeyByte(lower[i]) {
			sb.WriteByte(lower[i])
		}
	}
	return sb.String()
}

// NormalizeText lowercases text and collapses every run of characters outside
// [a-z0-9] into a single space, so multi-word text splits into word tokens.
// The result has no leading or trailing space.
func NormalizeText(text string) string {
	lower := strings.ToLower(text)
	var sb strings.Builder
	sb.Grow(len(lower))
	pendingSpace := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if !isKeyByte(c) {
			pendingSpace = sb.Len() > 0
			continue
		}
		if pendingSpace {
			sb.WriteByte(' ')
			pendingSpace = false
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Tokens splits text into its normalized word tokens
func Tokens(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return []string{}
	}
	return strings.Split(normalized, " ")
}

func isKeyByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
