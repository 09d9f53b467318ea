package urlcheck

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/internal/report"
	"github.com/msto63/uvroot/pkg/core/logging"
)

var defaultURLs = []string{
	"example.com",
	"https://www.python.org",
	"github.com/user/repo",
	"münchen.de",
	"café.fr",
	"invalid",
	"https://sub.domain.example.com:8080/path",
}

func TestEncodeDecodeDomain(t *testing.T) {
	tests := []struct {
		unicode, ascii string
	}{
		{"münchen.de", "xn--mnchen-3ya.de"},
		{"café.fr", "xn--caf-dma.fr"},
		{"example.com", "example.com"},
	}
	for _, tt := range tests {
		got, err := EncodeDomain(tt.unicode)
		if err != nil {
			t.Fatalf("EncodeDomain(%q) error = %v", tt.unicode, err)
		}
		if got != tt.ascii {
			t.Errorf("EncodeDomain(%q) = %q, want %q", tt.unicode, got, tt.ascii)
		}
		back, err := DecodeDomain(got)
		if err != nil {
			t.Fatalf("DecodeDomain(%q) error = %v", got, err)
		}
		if back != tt.unicode {
			t.Errorf("DecodeDomain(%q) = %q, want %q", got, back, tt.unicode)
		}
	}

	if _, err := EncodeDomain("exa mple.com"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("EncodeDomain(space) code = %v, want INVALID_FORMAT", mdwerror.GetCode(err))
	}
}

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   bool
	}{
		{"example.com", true},
		{"sub.domain.example.com", true},
		{"münchen.de", true},
		{"invalid", false},
		{"", false},
		{"a..com", false},
		{".com", false},
		{"-bad.com", false},
		{"bad-.com", false},
		{"in-side.com", true},
	}
	for _, tt := range tests {
		if got := ValidateDomain(tt.domain); got != tt.want {
			t.Errorf("ValidateDomain(%q) = %v, want %v", tt.domain, got, tt.want)
		}
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url, want string
	}{
		{"example.com", "example.com"},
		{"https://www.python.org", "www.python.org"},
		{"github.com/user/repo", "github.com"},
		{"https://sub.domain.example.com:8080/path", "sub.domain.example.com"},
		{"http://host:80", "host"},
		{"ftp://files.example.com/x", "files.example.com"},
	}
	for _, tt := range tests {
		if got := ExtractDomain(tt.url); got != tt.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestProcessURL(t *testing.T) {
	c := NewChecker(nil)

	got := c.ProcessURL("café.fr")
	want := Result{
		URL:        "café.fr",
		Normalized: "https://café.fr",
		Domain:     "café.fr",
		Encoded:    "xn--caf-dma.fr",
		Valid:      true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProcessURL() mismatch (-want +got):\n%s", diff)
	}

	got = c.ProcessURL("invalid")
	if got.Valid || got.Encoded != "invalid" {
		t.Errorf("ProcessURL(invalid) = %+v, want unencoded invalid", got)
	}
}

func TestEncodeFallbackLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Wrap(logging.NewLogger(logging.LoggerConfig{
		Level:  "warn",
		Format: "json",
		Output: &buf,
	}), "urls")
	c := NewChecker(logger)

	got, err := c.Encode("exa mple.com")
	if err == nil {
		t.Fatal("Encode() error = nil, want error")
	}
	if got != "exa mple.com" {
		t.Errorf("Encode() = %q, want input fallback", got)
	}
	if !strings.Contains(buf.String(), "Encoding error") {
		t.Errorf("log = %q, want Encoding error", buf.String())
	}
}

func TestRun(t *testing.T) {
	c := NewChecker(nil)
	results, valid := c.Analyze(defaultURLs)
	if valid != 6 {
		t.Errorf("Analyze() valid = %d, want 6", valid)
	}
	total, v := Statistics(results)
	if total != 7 || v != 6 {
		t.Errorf("Statistics() = (%d, %d), want (7, 6)", total, v)
	}

	rep := c.Run(defaultURLs)
	var buf bytes.Buffer
	rep.WriteText(report.NewPrinter(&buf))
	out := buf.String()
	for _, want := range []string{
		"Analyzing URLs...",
		"URL: https://example.com",
		"  Domain: münchen.de, Valid: true",
		"  Encoded: xn--mnchen-3ya.de",
		"  Domain: invalid, Valid: false",
		strings.Repeat("=", 50),
		"  Total URLs: 7",
		"  Invalid: 1",
		"=== URL Analysis Report ===",
		"4. ✓ münchen.de",
		"6. ✗ invalid",
		"✓ Processed 7 URLs (6 valid)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
