// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the content aggregation layer.
type Config struct {
	// HTTPTimeout is the timeout for individual HTTP requests
	HTTPTimeout time.Duration `json:"http_timeout"`
	// StrategyTimeout bounds one transport attempt inside a fallback chain,
	// so a hung transport cannot serially stack slow failures
	StrategyTimeout time.Duration `json:"strategy_timeout"`

	// MaxRetries is the maximum number of retries for failed requests
	MaxRetries int `json:"max_retries"`
	// InitialBackoff is the initial backoff duration for retries
	InitialBackoff time.Duration `json:"initial_backoff"`
	// MaxBackoff is the maximum backoff duration for retries
	MaxBackoff time.Duration `json:"max_backoff"`
	// BackoffMultiplier is the multiplier for exponential backoff (must be > 1)
	BackoffMultiplier float64 `json:"backoff_multiplier"`

	// DataAPIKey enables the official Data API search source when set
	DataAPIKey string `json:"data_api_key"`
	// UserAgent overrides the browser user agent sent with page requests
	UserAgent string `json:"user_agent"`
	// Language is the hl value sent to the Innertube API
	Language string `json:"language"`
	// Region is the gl value sent to the Innertube API
	Region string `json:"region"`

	// PageRPS limits requests per second against youtube.com
	PageRPS float64 `json:"page_rps"`
	// DataAPIRPS limits requests per second against the Data API
	DataAPIRPS float64 `json:"data_api_rps"`
	// FeedRPS limits requests per second against syndication feeds
	FeedRPS float64 `json:"feed_rps"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTPTimeout:       12 * time.Second,
		StrategyTimeout:   15 * time.Second,
		MaxRetries:        3,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        15 * time.Second,
		BackoffMultiplier: 2.0,
		Language:          "en",
		Region:            "US",
		PageRPS:           2.5,
		DataAPIRPS:        1.0,
		FeedRPS:           10.0,
	}
}

// Load loads configuration from environment variables, config file, and
// defaults. Priority: env vars > config file > defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from mentora.json in the current
// directory or ~/.config/mentora/.
func (c *Config) loadFromFile() error {
	paths := []string{"mentora.json"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mentora", "mentora.json"))
	}

	var lastErr error = os.ErrNotExist
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}
	return lastErr
}

// loadFromEnv overrides config values from MENTORA_* environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("MENTORA_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		}
	}
	if v := os.Getenv("MENTORA_STRATEGY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.StrategyTimeout = d
		}
	}
	if v := os.Getenv("MENTORA_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("MENTORA_INITIAL_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.InitialBackoff = d
		}
	}
	if v := os.Getenv("MENTORA_MAX_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.MaxBackoff = d
		}
	}
	if v := os.Getenv("MENTORA_BACKOFF_MULTIPLIER"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.BackoffMultiplier = f
		}
	}
	if v := os.Getenv("MENTORA_DATA_API_KEY"); v != "" {
		c.DataAPIKey = v
	}
	if v := os.Getenv("MENTORA_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("MENTORA_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("MENTORA_REGION"); v != "" {
		c.Region = v
	}
	if v := os.Getenv("MENTORA_PAGE_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.PageRPS = f
		}
	}
	if v := os.Getenv("MENTORA_DATA_API_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.DataAPIRPS = f
		}
	}
	if v := os.Getenv("MENTORA_FEED_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.FeedRPS = f
		}
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}
	if c.StrategyTimeout <= 0 {
		return fmt.Errorf("strategy_timeout must be positive")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative")
	}
	if c.BackoffMultiplier <= 1 {
		return fmt.Errorf("backoff_multiplier must be greater than 1")
	}
	if c.InitialBackoff <= 0 || c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("backoff durations must be positive and max_backoff >= initial_backoff")
	}
	return nil
}
