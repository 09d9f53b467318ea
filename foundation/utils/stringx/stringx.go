// File: stringx.go
// Title: Core String Utility Functions
// Description: Blank checks, truncation, title casing and whitespace
//              normalization. Unicode-safe throughout.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-17 v0.3.0: ToTitleCase capitalizes letter runs, added Clip and
//                      NormalizeSpace

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first argument that is not blank, or ""
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// Truncate truncates a string to maxLen runes including the ellipsis.
// If the string fits, it is returned unchanged.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// Clip keeps the first n runes of s and appends suffix when anything was
// cut. Unlike Truncate the suffix does not count against n.
func Clip(s string, n int, suffix string) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + suffix
}

// ToTitleCase upper-cases the first cased letter of every run of cased
// letters and lower-cases the rest. Any non-letter, digits and apostrophes
// included, starts a new run: "they're 3rd" becomes "They'Re 3Rd".
func ToTitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if isCased(r) {
			if inRun {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			inRun = true
			continue
		}
		b.WriteRune(r)
		inRun = false
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// NormalizeSpace collapses every whitespace run to a single space and trims
// both ends.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitLines splits on \n, \r\n and \r
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
