// Package validation provides input validation for user-supplied drug and
// class names before they reach the upstream services.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

const maxTermLength = 200

// Pre-compiled regex patterns, compiled once at package initialization.
var (
	// Drug and class names: letters, digits, spaces and the punctuation that
	// occurs in RxNorm names and ATC class labels.
	termRegex = regexp.MustCompile(`^[\p{L}\p{N}\s\-\.\,\+\(\)/'%]+$`)

	// strings.Contains is faster than regex for simple substring matching
	dangerousPatterns = []string{
		"<script", "javascript:", "onload=", "onerror=",
		"../", "..\\", "file://",
		"union select", "drop table", "delete from",
		"$(", "${", "`",
	}
)

// ValidateTerm checks a user-supplied drug or class name.
func ValidateTerm(term string) error {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return fmt.Errorf("search term cannot be empty")
	}

	if len(trimmed) > maxTermLength {
		return fmt.Errorf("search term too long: %d characters (max %d)", len(trimmed), maxTermLength)
	}

	lower := strings.ToLower(trimmed)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("search term contains disallowed sequence %q", pattern)
		}
	}

	if !termRegex.MatchString(trimmed) {
		return fmt.Errorf("search term contains invalid characters")
	}

	return nil
}

// NormalizeTerm prepares a term for querying: trims whitespace, collapses
// internal runs of spaces and folds diacritics (RxNav searches are
// ASCII-based, so "Métoprolol" must reach it as "Metoprolol").
func NormalizeTerm(term string) string {
	trimmed := strings.Join(strings.Fields(term), " ")

	decomposed := norm.NFD.String(trimmed)
	stripped := runes.Remove(runes.In(unicode.Mn)).String(decomposed)
	return norm.NFC.String(stripped)
}
