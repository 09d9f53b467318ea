// Package textscan extracts numbers and email addresses from free text,
// applies regex replacements and validates values against named formats.
package textscan

import (
	"strconv"
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/foundation/utils/stringx"
	"github.com/msto63/uvroot/foundation/utils/validationx"
)

const (
	sanitizePattern = `[^a-zA-Z0-9\s]`
	numberPattern   = `\d+`
	emailPattern    = `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`
)

// TextAnalysis is the per-sample result of AnalyzeText
type TextAnalysis struct {
	Words           int      `json:"words" yaml:"words"`
	Unique          int      `json:"unique" yaml:"unique"`
	Numbers         []int    `json:"numbers" yaml:"numbers"`
	Emails          []string `json:"emails" yaml:"emails"`
	SanitizedLength int      `json:"sanitized_length" yaml:"sanitized_length"`
}

// Match is one regex hit. Start and End are rune offsets.
type Match struct {
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Transforms holds the case and whitespace variants of a text
type Transforms struct {
	Upper      string `json:"upper" yaml:"upper"`
	Lower      string `json:"lower" yaml:"lower"`
	Title      string `json:"title" yaml:"title"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

// Summary totals several analyses
type Summary struct {
	Words   int `json:"words" yaml:"words"`
	Numbers int `json:"numbers" yaml:"numbers"`
	Emails  int `json:"emails" yaml:"emails"`
}

// Sanitize removes everything except ASCII letters, digits and whitespace
func Sanitize(text string) string {
	return validationx.MustCompilePattern(sanitizePattern).ReplaceAllString(text, "")
}

// ExtractNumbers returns every run of digits as an int. Runs too long for
// an int are skipped.
func ExtractNumbers(text string) []int {
	found := validationx.MustCompilePattern(numberPattern).FindAllString(text, -1)
	numbers := make([]int, 0, len(found))
	for _, s := range found {
		n, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// ExtractEmails returns every email address in text
func ExtractEmails(text string) []string {
	emails := validationx.MustCompilePattern(emailPattern).FindAllString(text, -1)
	if emails == nil {
		return []string{}
	}
	return emails
}

// CountWords splits on whitespace. unique counts case-insensitively.
func CountWords(text string) (words, unique int) {
	fields := strings.Fields(text)
	seen := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		seen[strings.ToLower(w)] = struct{}{}
	}
	return len(fields), len(seen)
}

// AnalyzeText combines word counts, extracted numbers and emails and the
// sanitized length
func AnalyzeText(text string) TextAnalysis {
	words, unique := CountWords(text)
	return TextAnalysis{
		Words:           words,
		Unique:          unique,
		Numbers:         ExtractNumbers(text),
		Emails:          ExtractEmails(text),
		SanitizedLength: utf8.RuneCountInString(Sanitize(text)),
	}
}

// FindPatterns returns every match of pattern in text
func FindPatterns(text, pattern string) ([]Match, error) {
	re, err := validationx.CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	locs := re.FindAllStringIndex(text, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Text:  text[loc[0]:loc[1]],
			Start: utf8.RuneCountInString(text[:loc[0]]),
			End:   utf8.RuneCountInString(text[:loc[1]]),
		})
	}
	return matches, nil
}

// ReplacePattern replaces every match of pattern with the literal
// replacement and reports how many matches there were
func ReplacePattern(text, pattern, replacement string) (string, int, error) {
	return replace(text, pattern, replacement, false)
}

// ExpandPattern is ReplacePattern with group references such as $1 or
// ${name} expanded in the replacement
func ExpandPattern(text, pattern, template string) (string, int, error) {
	return replace(text, pattern, template, true)
}

func replace(text, pattern, replacement string, expand bool) (string, int, error) {
	re, err := validationx.CompilePattern(pattern)
	if err != nil {
		return "", 0, mdwerror.Wrap(err, "invalid replacement pattern").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("textscan.ReplacePattern")
	}
	count := len(re.FindAllStringIndex(text, -1))
	if expand {
		return re.ReplaceAllString(text, replacement), count, nil
	}
	return re.ReplaceAllLiteralString(text, replacement), count, nil
}

// Transform returns upper, lower, title-cased and whitespace-normalized
// variants of text
func Transform(text string) Transforms {
	return Transforms{
		Upper:      strings.ToUpper(text),
		Lower:      strings.ToLower(text),
		Title:      stringx.ToTitleCase(text),
		Normalized: stringx.NormalizeSpace(text),
	}
}

// ValidateFormat checks text against email, phone, url or number. Unknown
// kinds accept everything.
func ValidateFormat(text, kind string) bool {
	valid, _ := validationx.Check(kind, text)
	return valid
}

// BatchValidate counts the texts that pass ValidateFormat
func BatchValidate(texts []string, kind string) int {
	valid := 0
	for _, t := range texts {
		if ValidateFormat(t, kind) {
			valid++
		}
	}
	return valid
}

// Summarize totals words, numbers and emails over all analyses
func Summarize(analyses []TextAnalysis) Summary {
	var s Summary
	for _, a := range analyses {
		s.Words += a.Words
		s.Numbers += len(a.Numbers)
		s.Emails += len(a.Emails)
	}
	return s
}
