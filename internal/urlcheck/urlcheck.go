// Package urlcheck extracts and validates the domains of URLs and converts
// internationalized domain names between Unicode and ASCII.
package urlcheck

import (
	"strings"

	"golang.org/x/net/idna"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/pkg/core/logging"
)

// Result describes one checked URL. URL is the input as given, Normalized
// carries the scheme that was added when it was missing.
type Result struct {
	URL        string `json:"url" yaml:"url"`
	Normalized string `json:"normalized" yaml:"normalized"`
	Domain     string `json:"domain" yaml:"domain"`
	Encoded    string `json:"encoded" yaml:"encoded"`
	Valid      bool   `json:"valid" yaml:"valid"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// EncodeDomain converts a Unicode domain to its ASCII (punycode) form
func EncodeDomain(domain string) (string, error) {
	encoded, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return "", mdwerror.Wrap(err, "domain encoding failed").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("urlcheck.EncodeDomain").
			WithDetail("domain", domain)
	}
	return encoded, nil
}

// DecodeDomain converts an ASCII domain back to Unicode
func DecodeDomain(domain string) (string, error) {
	decoded, err := idna.Lookup.ToUnicode(domain)
	if err != nil {
		return "", mdwerror.Wrap(err, "domain decoding failed").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("urlcheck.DecodeDomain").
			WithDetail("domain", domain)
	}
	return decoded, nil
}

// ValidateDomain requires at least two dot-separated labels, none empty and
// none starting or ending with '-'
func ValidateDomain(domain string) bool {
	if domain == "" {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
			return false
		}
	}
	return true
}

// Normalize prefixes https:// unless the URL already starts with http://
// or https://
func Normalize(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

// ExtractDomain returns the host of url without port: the text after the
// last "//", up to the first '/' and then the first ':'
func ExtractDomain(url string) string {
	url = Normalize(url)
	if i := strings.LastIndex(url, "//"); i >= 0 {
		url = url[i+2:]
	}
	if i := strings.IndexByte(url, '/'); i >= 0 {
		url = url[:i]
	}
	if i := strings.IndexByte(url, ':'); i >= 0 {
		url = url[:i]
	}
	return url
}

// Checker processes URLs and logs encoding failures
type Checker struct {
	logger *logging.Logger
}

// NewChecker creates a checker. A nil logger discards diagnostics.
func NewChecker(logger *logging.Logger) *Checker {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Checker{logger: logger}
}

// Encode is EncodeDomain that falls back to the input on failure
func (c *Checker) Encode(domain string) (string, error) {
	encoded, err := EncodeDomain(domain)
	if err != nil {
		c.logger.Warn("Encoding error", "domain", domain, "error", err)
		return domain, err
	}
	return encoded, nil
}

// Decode is DecodeDomain that falls back to the input on failure
func (c *Checker) Decode(domain string) (string, error) {
	decoded, err := DecodeDomain(domain)
	if err != nil {
		c.logger.Warn("Decoding error", "domain", domain, "error", err)
		return domain, err
	}
	return decoded, nil
}

// ProcessURL extracts and validates the domain. Only valid domains are
// encoded; Encoded equals Domain otherwise.
func (c *Checker) ProcessURL(url string) Result {
	domain := ExtractDomain(url)
	r := Result{
		URL:        url,
		Normalized: Normalize(url),
		Domain:     domain,
		Encoded:    domain,
		Valid:      ValidateDomain(domain),
	}
	if r.Valid {
		encoded, err := c.Encode(domain)
		r.Encoded = encoded
		if err != nil {
			r.Error = err.Error()
		}
	}
	return r
}

// Analyze processes every URL in order and counts the valid ones
func (c *Checker) Analyze(urls []string) ([]Result, int) {
	results := make([]Result, 0, len(urls))
	valid := 0
	for _, u := range urls {
		r := c.ProcessURL(u)
		if r.Valid {
			valid++
		}
		results = append(results, r)
	}
	return results, valid
}

// Statistics returns the total and valid counts
func Statistics(results []Result) (total, valid int) {
	for _, r := range results {
		if r.Valid {
			valid++
		}
	}
	return len(results), valid
}
