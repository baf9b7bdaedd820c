package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Version is the keggkit release version.
const Version = "0.1.0"

// MaxRetriesLimit bounds RemoteConfig.MaxRetries.
const MaxRetriesLimit = 10

// Config holds all keggkit configuration.
type Config struct {
	Remote   RemoteConfig
	Output   OutputConfig
	Log      LogConfig
	Progress bool // show a progress bar while retrieving entries
}

// RemoteConfig holds KEGG REST settings.
type RemoteConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int // 0 disables retries
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Dir string // directory for info-retrieval results
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text", "json"
}

// fileConfig is the schema of the optional HCL config file.
type fileConfig struct {
	BaseURL    string `hcl:"base_url,optional"`
	Timeout    string `hcl:"timeout,optional"`
	MaxRetries *int   `hcl:"max_retries,optional"`
	OutDir     string `hcl:"out_dir,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	LogFormat  string `hcl:"log_format,optional"`
	Progress   *bool  `hcl:"progress,optional"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Remote: RemoteConfig{
			BaseURL: "https://rest.kegg.jp",
			Timeout: 30 * time.Second,
		},
		Output: OutputConfig{
			Dir: "KEGG_info_results",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Progress: true,
	}
}

// Load builds the configuration from defaults, then the HCL file named by
// KEGG_CONFIG (if set), then environment variables.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("KEGG_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if fc.BaseURL != "" {
		c.Remote.BaseURL = fc.BaseURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("config file %s: timeout: %w", path, err)
		}
		c.Remote.Timeout = d
	}
	if fc.MaxRetries != nil {
		c.Remote.MaxRetries = *fc.MaxRetries
	}
	if fc.OutDir != "" {
		c.Output.Dir = fc.OutDir
	}
	if fc.LogLevel != "" {
		c.Log.Level = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.Log.Format = fc.LogFormat
	}
	if fc.Progress != nil {
		c.Progress = *fc.Progress
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Remote.BaseURL = getenv("KEGG_BASE_URL", c.Remote.BaseURL)
	c.Remote.Timeout = getenvDuration("KEGG_TIMEOUT", c.Remote.Timeout)
	c.Remote.MaxRetries = getenvInt("KEGG_MAX_RETRIES", c.Remote.MaxRetries)
	c.Output.Dir = getenv("KEGG_OUT_DIR", c.Output.Dir)
	c.Log.Level = getenv("KEGG_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenv("KEGG_LOG_FORMAT", c.Log.Format)
	c.Progress = getenvBool("KEGG_PROGRESS", c.Progress)
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.Remote.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("KEGG_BASE_URL must be an http(s) URL, got %q", c.Remote.BaseURL))
	}
	if c.Remote.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %v", c.Remote.Timeout))
	}
	if c.Remote.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("max retries must be >= 0, got %d", c.Remote.MaxRetries))
	}
	if c.Remote.MaxRetries > MaxRetriesLimit {
		errs = append(errs, fmt.Errorf("max retries must be <= %d, got %d", MaxRetriesLimit, c.Remote.MaxRetries))
	}
	if c.Output.Dir == "" {
		errs = append(errs, errors.New("output directory must not be empty"))
	}
	errs = append(errs, c.ValidateLog())

	return errors.Join(errs...)
}

// ValidateLog checks only the logging settings. Commands that never reach
// the KEGG service validate with this instead of Validate.
func (c Config) ValidateLog() error {
	var errs []error
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level must be debug, info, warn, or error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
