package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	mdwconfig "github.com/msto63/uvroot/foundation/core/config"
	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	mdwlog "github.com/msto63/uvroot/foundation/core/log"
)

// EnvConfigPath names the environment variable that points to a config file
const EnvConfigPath = "UVROOT_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	API        APIConfig        `toml:"api" yaml:"api"`
	Matrix     MatrixConfig     `toml:"matrix" yaml:"matrix"`
	Datasets   DatasetsConfig   `toml:"datasets" yaml:"datasets"`
	Text       TextConfig       `toml:"text" yaml:"text"`
	Simulation SimulationConfig `toml:"simulation" yaml:"simulation"`
	Scan       ScanConfig       `toml:"scan" yaml:"scan"`
	Dates      DatesConfig      `toml:"dates" yaml:"dates"`
	URLs       URLsConfig       `toml:"urls" yaml:"urls"`
	History    HistoryConfig    `toml:"history" yaml:"history"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	DataDir   string `toml:"data_dir" yaml:"data_dir"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Output    string `toml:"output" yaml:"output"`
}

// APIConfig holds the HTTP probe settings
type APIConfig struct {
	Timeout     Duration    `toml:"timeout" yaml:"timeout"`
	Concurrency int         `toml:"concurrency" yaml:"concurrency"`
	Targets     []APITarget `toml:"targets" yaml:"targets"`
}

// APITarget is one URL to probe together with its metric triple
type APITarget struct {
	URL    string    `toml:"url" yaml:"url"`
	Values []float64 `toml:"values" yaml:"values"`
}

// MatrixConfig holds the matrix analysis settings. Seed 0 seeds from the clock.
type MatrixConfig struct {
	Sizes []int `toml:"sizes" yaml:"sizes"`
	Seed  int64 `toml:"seed" yaml:"seed"`
}

// DatasetsConfig holds the integer datasets for the pipeline
type DatasetsConfig struct {
	Values [][]int `toml:"values" yaml:"values"`
}

// TextConfig holds the text samples and pattern settings. The replacement
// is inserted literally unless Expand is set, in which case $1 and ${name}
// refer to pattern groups.
type TextConfig struct {
	Samples      []string `toml:"samples" yaml:"samples"`
	Pattern      string   `toml:"pattern" yaml:"pattern"`
	Replacement  string   `toml:"replacement" yaml:"replacement"`
	Expand       bool     `toml:"expand_replacement" yaml:"expand_replacement"`
	ValidateKind string   `toml:"validate_kind" yaml:"validate_kind"`
	ValidateWith []string `toml:"validate_with" yaml:"validate_with"`
}

// SimulationConfig holds the random simulation settings
type SimulationConfig struct {
	Seed             int64 `toml:"seed" yaml:"seed"`
	Runs             int   `toml:"runs" yaml:"runs"`
	Size             int   `toml:"size" yaml:"size"`
	Min              int   `toml:"min" yaml:"min"`
	Max              int   `toml:"max" yaml:"max"`
	SamplePopulation int   `toml:"sample_population" yaml:"sample_population"`
	SampleSize       int   `toml:"sample_size" yaml:"sample_size"`
}

// ScanConfig holds the filesystem scan settings. Empty Paths means the
// working directory and its parent.
type ScanConfig struct {
	Paths       []string `toml:"paths" yaml:"paths"`
	EnvVars     []string `toml:"env_vars" yaml:"env_vars"`
	MaxValueLen int      `toml:"max_value_len" yaml:"max_value_len"`
}

// DatesConfig holds the date processing settings
type DatesConfig struct {
	Samples      []string `toml:"samples" yaml:"samples"`
	SequenceDays int      `toml:"sequence_days" yaml:"sequence_days"`
}

// URLsConfig holds the URLs to check
type URLsConfig struct {
	List []string `toml:"list" yaml:"list"`
}

// HistoryConfig holds the run history store settings
type HistoryConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Path      string   `toml:"path" yaml:"path"`
	Retention Duration `toml:"retention" yaml:"retention"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration every command falls back to
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:      "uvroot",
			DataDir:   "./data",
			LogLevel:  "warn",
			LogFormat: "text",
			Output:    "text",
		},
		API: APIConfig{
			Timeout:     Duration{5 * time.Second},
			Concurrency: 4,
			Targets: []APITarget{
				{URL: "https://api.github.com", Values: []float64{10, 20, 30}},
				{URL: "https://httpbin.org/status/200", Values: []float64{5, 15, 25}},
				{URL: "https://www.python.org", Values: []float64{8, 12, 18}},
			},
		},
		Matrix: MatrixConfig{
			Sizes: []int{3, 5, 10},
		},
		Datasets: DatasetsConfig{
			Values: [][]int{
				{10, 25, 30, 15, 40, 35, 20, 45, 50, 28},
				{5, 15, 25, 35, 45, 55, 65, 75, 85, 95},
				{100, 200, 150, 175, 225, 250, 300, 275, 325, 350},
				{3, 7, 11, 13, 17, 19, 23, 29, 31, 37},
			},
		},
		Text: TextConfig{
			Samples: []string{
				"Hello World! Contact us at support@example.com for help. Phone: 1234567890",
				"Python 3.11 is great! Email: admin@test.org or sales@company.com",
				"Order #12345 received. Total: $99.99. Tracking: ABC-123-XYZ",
				"Visit https://www.python.org for more info about Python programming",
			},
			Pattern:      `\d+`,
			Replacement:  "XXX",
			ValidateKind: "email",
			ValidateWith: []string{"support@example.com", "invalid.email", "admin@test.org"},
		},
		Simulation: SimulationConfig{
			Seed:             42,
			Runs:             3,
			Size:             20,
			Min:              1,
			Max:              100,
			SamplePopulation: 50,
			SampleSize:       10,
		},
		Scan: ScanConfig{
			EnvVars:     []string{"PATH", "HOME", "USER", "SHELL"},
			MaxValueLen: 50,
		},
		Dates: DatesConfig{
			Samples: []string{
				"2025-01-01T00:00:00",
				"2025-06-15T12:30:00",
				"2025-12-31T23:59:59",
			},
			SequenceDays: 10,
		},
		URLs: URLsConfig{
			List: []string{
				"example.com",
				"https://www.python.org",
				"github.com/user/repo",
				"münchen.de",
				"café.fr",
				"invalid",
				"https://sub.domain.example.com:8080/path",
			},
		},
		History: HistoryConfig{
			Path:      "./data/uvroot.db",
			Retention: Duration{30 * 24 * time.Hour},
		},
	}
}

// Load reads a TOML or YAML file on top of the defaults. Keys absent from
// the file keep their default values. A list present in the file replaces
// the default list as a whole.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := mdwconfig.Decode(path, cfg); err != nil {
		return nil, err
	}
	file := &Config{}
	if err := mdwconfig.Decode(path, file); err != nil {
		return nil, err
	}
	cfg.replaceLists(file)

	cfg.expandEnvVars()
	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(cfg.General.DataDir, "uvroot.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the UVROOT_CONFIG environment
// variable or the first default location that exists. Without any file it
// returns the defaults and an empty path.
func LoadFromEnv() (cfg *Config, path string, err error) {
	path = os.Getenv(EnvConfigPath)
	if path == "" {
		opts := mdwconfig.DefaultDiscoveryOptions()
		if home, herr := os.UserHomeDir(); herr == nil {
			opts.Paths = append(opts.Paths, filepath.Join(home, ".config", "uvroot"))
		}
		path = mdwconfig.Discover(opts)
	}

	if path == "" {
		return Default(), "", nil
	}

	cfg, err = Load(path)
	return cfg, path, err
}

// replaceLists copies every list the file set. Decoding onto the defaults
// reuses existing elements, so a table without a key would otherwise
// inherit the default element's value.
func (c *Config) replaceLists(file *Config) {
	if file.API.Targets != nil {
		c.API.Targets = file.API.Targets
	}
	if file.Matrix.Sizes != nil {
		c.Matrix.Sizes = file.Matrix.Sizes
	}
	if file.Datasets.Values != nil {
		c.Datasets.Values = file.Datasets.Values
	}
	if file.Text.Samples != nil {
		c.Text.Samples = file.Text.Samples
	}
	if file.Text.ValidateWith != nil {
		c.Text.ValidateWith = file.Text.ValidateWith
	}
	if file.Scan.Paths != nil {
		c.Scan.Paths = file.Scan.Paths
	}
	if file.Scan.EnvVars != nil {
		c.Scan.EnvVars = file.Scan.EnvVars
	}
	if file.Dates.Samples != nil {
		c.Dates.Samples = file.Dates.Samples
	}
	if file.URLs.List != nil {
		c.URLs.List = file.URLs.List
	}
}

// expandEnvVars expands environment variables in path-like values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
	for i, p := range c.Scan.Paths {
		c.Scan.Paths[i] = os.ExpandEnv(p)
	}
}

// Validate checks value ranges. The first problem found is returned with
// CodeInvalidConfig and the offending key as detail.
func (c *Config) Validate() error {
	invalid := func(key, msg string) error {
		return mdwerror.New(msg).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", "unknown log level "+c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", "unknown log format "+c.General.LogFormat)
	}
	switch strings.ToLower(c.General.Output) {
	case "text", "json", "yaml", "yml":
	default:
		return invalid("general.output", "unknown output format "+c.General.Output)
	}

	if c.API.Timeout.Duration <= 0 {
		return invalid("api.timeout", "timeout must be positive")
	}
	if c.API.Concurrency < 1 {
		return invalid("api.concurrency", "concurrency must be at least 1")
	}
	for _, t := range c.API.Targets {
		if strings.TrimSpace(t.URL) == "" {
			return invalid("api.targets.url", "target url cannot be empty")
		}
		if len(t.Values) == 0 {
			return invalid("api.targets.values", "target "+t.URL+" has no values")
		}
	}

	for _, size := range c.Matrix.Sizes {
		if size < 1 {
			return invalid("matrix.sizes", "matrix sizes must be positive")
		}
	}

	s := c.Simulation
	if s.Runs < 0 || s.Size < 1 {
		return invalid("simulation", "runs must be >= 0 and size >= 1")
	}
	if s.Min > s.Max {
		return invalid("simulation.min", "min must not exceed max")
	}
	if s.SamplePopulation < 0 || s.SampleSize < 0 {
		return invalid("simulation.sample_size", "sample settings must not be negative")
	}

	if c.Scan.MaxValueLen < 0 {
		return invalid("scan.max_value_len", "max_value_len must not be negative")
	}
	if c.Dates.SequenceDays < 0 {
		return invalid("dates.sequence_days", "sequence_days must not be negative")
	}

	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return invalid("history.path", "history path cannot be empty when history is enabled")
	}
	return nil
}
