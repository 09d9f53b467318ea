package apiprobe

import (
	"context"
	"io"
	"net/http"
	"time"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/foundation/utils/mathx"
	"github.com/msto63/uvroot/pkg/core/logging"
)

// Status labels
const (
	StatusSuccess     = "Success"
	StatusNotFound    = "Not Found"
	StatusServerError = "Server Error"
	StatusUnknown     = "Unknown"
	StatusError       = "Error"
)

// UnknownContentType is reported when a response has no Content-Type header
const UnknownContentType = "unknown"

// maxDrain bounds how much of a body is read before closing it
const maxDrain = 64 << 10

// Config holds prober settings
type Config struct {
	Timeout     time.Duration
	Concurrency int
}

// DefaultConfig returns a 5s timeout with four parallel probes
func DefaultConfig() Config {
	return Config{Timeout: 5 * time.Second, Concurrency: 4}
}

// Prober issues GET requests and records status and content type
type Prober struct {
	client      *http.Client
	concurrency int
	logger      *logging.Logger
}

// NewProber creates a prober. A nil logger discards diagnostics.
func NewProber(cfg Config, logger *logging.Logger) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Prober{
		client:      &http.Client{Timeout: cfg.Timeout},
		concurrency: cfg.Concurrency,
		logger:      logger,
	}
}

// Close releases idle connections
func (p *Prober) Close() {
	p.client.CloseIdleConnections()
}

// Probe is the outcome of one GET request. StatusCode is 0 when the request
// never produced a response.
type Probe struct {
	URL         string `json:"url" yaml:"url"`
	StatusCode  int    `json:"status_code" yaml:"status_code"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Err         error  `json:"-" yaml:"-"`
}

// Status classifies the probe; failed requests are StatusError
func (pr Probe) Status() string {
	if pr.Err != nil || pr.StatusCode == 0 {
		return StatusError
	}
	return ClassifyStatus(pr.StatusCode)
}

// Fetch performs one GET. Transport failures are logged and recorded in the
// returned Probe, never returned as errors.
func (p *Prober) Fetch(ctx context.Context, url string) Probe {
	probe := Probe{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		probe.Err = mdwerror.Wrap(err, "invalid request").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("apiprobe.Fetch").
			WithDetail("url", url)
		p.logger.Warn("Error fetching data", "url", url, "error", err)
		return probe
	}
	req.Header.Set("User-Agent", "uvroot-apiprobe")

	resp, err := p.client.Do(req)
	if err != nil {
		probe.Err = mdwerror.Wrap(err, "request failed").
			WithCode(mdwerror.CodeNetworkError).
			WithOperation("apiprobe.Fetch").
			WithDetail("url", url)
		p.logger.Warn("Error fetching data", "url", url, "error", err)
		return probe
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	probe.StatusCode = resp.StatusCode
	probe.ContentType = resp.Header.Get("Content-Type")
	if probe.ContentType == "" {
		probe.ContentType = UnknownContentType
	}

	p.logger.Debug("probe complete", "url", url, "status_code", resp.StatusCode)
	return probe
}

// ClassifyStatus maps an HTTP status code to its label
func ClassifyStatus(code int) string {
	switch code {
	case http.StatusOK:
		return StatusSuccess
	case http.StatusNotFound:
		return StatusNotFound
	case http.StatusInternalServerError:
		return StatusServerError
	default:
		return StatusUnknown
	}
}

// Metrics summarizes the values attached to a target
type Metrics struct {
	Average float64 `json:"average" yaml:"average"`
	Total   float64 `json:"total" yaml:"total"`
	Max     float64 `json:"max" yaml:"max"`
	Min     float64 `json:"min" yaml:"min"`
}

// CalculateMetrics returns average, total, max and min
func CalculateMetrics(values ...float64) (Metrics, error) {
	s, err := mathx.Describe(values)
	if err != nil {
		return Metrics{}, mdwerror.Wrap(err, "no values to measure").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("apiprobe.CalculateMetrics")
	}
	return Metrics{Average: s.Mean, Total: s.Total, Max: s.Max, Min: s.Min}, nil
}
