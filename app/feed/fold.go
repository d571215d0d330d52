package feed

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s after NFC normalization, so "Høring" typed with a
// combining ring matches the precomposed form found in feeds.
func Fold(s string) string {
	// Casers carry state and must not be shared across goroutines.
	return cases.Lower(language.Norwegian).String(norm.NFC.String(s))
}

// ContainsFold reports whether pattern occurs in value, ignoring case.
func ContainsFold(value, pattern string) bool {
	return strings.Contains(Fold(value), Fold(pattern))
}
