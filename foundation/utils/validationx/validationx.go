// File: validationx.go
// Title: Core Validation Utilities
// Description: Named format patterns, a cached regex compiler and
//              convenience predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-17 v0.2.0: Named format registry and exported CompilePattern

package validationx

import (
	"regexp"
	"sort"
	"sync"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
)

// Format names understood by Check
const (
	FormatEmail  = "email"
	FormatPhone  = "phone"
	FormatURL    = "url"
	FormatNumber = "number"
)

// Anchored patterns for the named formats. The email character class keeps
// a literal '|' in the TLD part for compatibility with existing data.
var formatPatterns = map[string]string{
	FormatEmail:  `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}$`,
	FormatPhone:  `^\+?1?\d{9,15}$`,
	FormatURL:    `^https?://[^\s]+$`,
	FormatNumber: `^\d+$`,
}

// Regex cache for compiled patterns to avoid recompilation
var (
	regexCache = make(map[string]*regexp.Regexp)
	regexMu    sync.RWMutex
)

// CompilePattern returns a cached compiled regex or compiles and caches it.
// Compile failures carry CodeInvalidFormat and the offending pattern.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	regexMu.RLock()
	if re, exists := regexCache[pattern]; exists {
		regexMu.RUnlock()
		return re, nil
	}
	regexMu.RUnlock()

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid pattern").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("validationx.CompilePattern").
			WithDetail("pattern", pattern)
	}

	regexMu.Lock()
	regexCache[pattern] = re
	regexMu.Unlock()

	return re, nil
}

// MustCompilePattern is CompilePattern for patterns known at compile time
func MustCompilePattern(pattern string) *regexp.Regexp {
	re, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Formats lists the known format names, sorted
func Formats() []string {
	names := make([]string, 0, len(formatPatterns))
	for name := range formatPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check validates value against a named format. known is false for an
// unrecognized format name, in which case valid is always true.
func Check(format, value string) (valid bool, known bool) {
	pattern, ok := formatPatterns[format]
	if !ok {
		return true, false
	}
	return MustCompilePattern(pattern).MatchString(value), true
}

// ===============================
// Convenience Functions
// ===============================

// IsValidEmail is a convenience function for email validation
func IsValidEmail(email string) bool {
	valid, _ := Check(FormatEmail, email)
	return valid
}

// IsValidPhone is a convenience function for phone validation
func IsValidPhone(phone string) bool {
	valid, _ := Check(FormatPhone, phone)
	return valid
}

// IsValidURL is a convenience function for http(s) URL validation
func IsValidURL(url string) bool {
	valid, _ := Check(FormatURL, url)
	return valid
}

// IsNumeric reports whether s is a non-empty run of ASCII digits
func IsNumeric(s string) bool {
	valid, _ := Check(FormatNumber, s)
	return valid
}
