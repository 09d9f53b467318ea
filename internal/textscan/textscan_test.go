package textscan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/internal/report"
)

var samples = []string{
	"Hello World! Contact us at support@example.com for help. Phone: 1234567890",
	"Python 3.11 is great! Email: admin@test.org or sales@company.com",
	"Order #12345 received. Total: $99.99. Tracking: ABC-123-XYZ",
	"Visit https://www.python.org for more info about Python programming",
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello, World!", "Hello World"},
		{"a-b_c\td", "abc\td"},
		{"café", "caf"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtract(t *testing.T) {
	if diff := cmp.Diff([]int{12345, 99, 99, 123}, ExtractNumbers(samples[2])); diff != "" {
		t.Errorf("ExtractNumbers() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{}, ExtractNumbers("no digits")); diff != "" {
		t.Errorf("ExtractNumbers() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"admin@test.org", "sales@company.com"}, ExtractEmails(samples[1])); diff != "" {
		t.Errorf("ExtractEmails() mismatch (-want +got):\n%s", diff)
	}
	if got := ExtractEmails(samples[3]); len(got) != 0 {
		t.Errorf("ExtractEmails() = %v, want none", got)
	}
}

func TestCountWords(t *testing.T) {
	words, unique := CountWords("the The  cat\tsat")
	if words != 4 || unique != 3 {
		t.Errorf("CountWords() = (%d, %d), want (4, 3)", words, unique)
	}
	words, unique = CountWords("   ")
	if words != 0 || unique != 0 {
		t.Errorf("CountWords(blank) = (%d, %d), want (0, 0)", words, unique)
	}
}

func TestAnalyzeText(t *testing.T) {
	want := TextAnalysis{
		Words:           10,
		Unique:          10,
		Numbers:         []int{1234567890},
		Emails:          []string{"support@example.com"},
		SanitizedLength: 69,
	}
	if diff := cmp.Diff(want, AnalyzeText(samples[0])); diff != "" {
		t.Errorf("AnalyzeText() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPatterns(t *testing.T) {
	got, err := FindPatterns("é12 x34", `\d+`)
	if err != nil {
		t.Fatalf("FindPatterns() error = %v", err)
	}
	want := []Match{{"12", 1, 3}, {"34", 5, 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindPatterns() mismatch (-want +got):\n%s", diff)
	}

	if _, err := FindPatterns("x", "("); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("FindPatterns(bad) code = %v, want INVALID_FORMAT", mdwerror.GetCode(err))
	}
}

func TestReplacePattern(t *testing.T) {
	got, count, err := ReplacePattern(samples[0], `\d+`, "XXX")
	if err != nil {
		t.Fatalf("ReplacePattern() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !strings.HasSuffix(got, "Phone: XXX") {
		t.Errorf("ReplacePattern() = %q", got)
	}

	got, count, _ = ReplacePattern("cost 5 and 7", `\d+`, "$0.00")
	if got != "cost $0.00 and $0.00" || count != 2 {
		t.Errorf("ReplacePattern(literal) = (%q, %d), want (cost $0.00 and $0.00, 2)", got, count)
	}

	got, count, _ = ExpandPattern("a1b22", `(\d)+`, "<$1>")
	if got != "a<1>b<2>" || count != 2 {
		t.Errorf("ExpandPattern() = (%q, %d), want (a<1>b<2>, 2)", got, count)
	}

	if _, _, err := ReplacePattern("x", "[", "y"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("ReplacePattern(bad) code = %v, want INVALID_FORMAT", mdwerror.GetCode(err))
	}
}

func TestTransform(t *testing.T) {
	got := Transform("  hello   WORLD! it's 3rd  ")
	want := Transforms{
		Upper:      "  HELLO   WORLD! IT'S 3RD  ",
		Lower:      "  hello   world! it's 3rd  ",
		Title:      "  Hello   World! It'S 3Rd  ",
		Normalized: "hello WORLD! it's 3rd",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transform() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		text, kind string
		want       bool
	}{
		{"support@example.com", "email", true},
		{"invalid.email", "email", false},
		{"+11234567890", "phone", true},
		{"12345", "phone", false},
		{"https://go.dev", "url", true},
		{"ftp://go.dev", "url", false},
		{"0042", "number", true},
		{"4.2", "number", false},
		{"anything", "color", true},
	}
	for _, tt := range tests {
		if got := ValidateFormat(tt.text, tt.kind); got != tt.want {
			t.Errorf("ValidateFormat(%q, %q) = %v, want %v", tt.text, tt.kind, got, tt.want)
		}
	}

	emails := []string{"support@example.com", "invalid.email", "admin@test.org"}
	if got := BatchValidate(emails, "email"); got != 2 {
		t.Errorf("BatchValidate() = %d, want 2", got)
	}
}

func TestSummarize(t *testing.T) {
	analyses := make([]TextAnalysis, len(samples))
	for i, s := range samples {
		analyses[i] = AnalyzeText(s)
	}
	want := Summary{Words: 34, Numbers: 7, Emails: 3}
	if diff := cmp.Diff(want, Summarize(analyses)); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunReplacementModes(t *testing.T) {
	opts := Options{Samples: []string{"Total: $12"}, Pattern: `(\d+)`, Replacement: "[$1]"}

	rep, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := rep.Replacement.Result; got != "Total: $[$1]" {
		t.Errorf("literal Result = %q, want %q", got, "Total: $[$1]")
	}

	opts.Expand = true
	rep, err = Run(opts)
	if err != nil {
		t.Fatalf("Run(expand) error = %v", err)
	}
	if got := rep.Replacement.Result; got != "Total: $[12]" {
		t.Errorf("expanded Result = %q, want %q", got, "Total: $[12]")
	}
}

func TestRun(t *testing.T) {
	rep, err := Run(Options{
		Samples:      samples,
		Pattern:      `\d+`,
		Replacement:  "XXX",
		ValidateKind: "email",
		ValidateWith: []string{"support@example.com", "invalid.email", "admin@test.org"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var buf bytes.Buffer
	rep.WriteText(report.NewPrinter(&buf))
	out := buf.String()
	for _, want := range []string{
		"=== Processing Text Data ===",
		"--- Text 3 ---",
		"  Words: 10 (unique: 10)",
		"  Numbers found: [3, 11]",
		"  Emails found: ['admin@test.org', 'sales@company.com']",
		"  Numbers found: []",
		"Total words: 34",
		"Total emails extracted: 3",
		"Original: Hello World! Contact us at support@example.com for...",
		"Title case: Hello World! Contact Us At Support@Example.Com For...",
		"Replaced 1 occurrences of pattern",
		"Validation: 2/3 valid emails",
		"✓ Processed 4 text samples",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunInvalidPattern(t *testing.T) {
	_, err := Run(Options{Samples: []string{"x"}, Pattern: "(", ValidateKind: "email"})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Run() code = %v, want INVALID_FORMAT", mdwerror.GetCode(err))
	}
}

func TestRunEmpty(t *testing.T) {
	rep, err := Run(Options{Pattern: `\d+`, ValidateKind: "email"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Transforms != nil || rep.Replacement != nil {
		t.Error("empty run should not transform or replace")
	}
}
