package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MENTORA_HTTP_TIMEOUT", "30s")
	t.Setenv("MENTORA_MAX_RETRIES", "5")
	t.Setenv("MENTORA_DATA_API_KEY", "test-key")
	t.Setenv("MENTORA_LANGUAGE", "de")
	t.Setenv("MENTORA_PAGE_RPS", "1.5")
	t.Setenv("MENTORA_BACKOFF_MULTIPLIER", "3.0")
	t.Setenv("MENTORA_DATA_API_RPS", "0.5")
	t.Setenv("MENTORA_FEED_RPS", "20")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
	if cfg.DataAPIKey != "test-key" {
		t.Errorf("DataAPIKey = %q", cfg.DataAPIKey)
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if cfg.PageRPS != 1.5 {
		t.Errorf("PageRPS = %v", cfg.PageRPS)
	}
	if cfg.BackoffMultiplier != 3.0 {
		t.Errorf("BackoffMultiplier = %v", cfg.BackoffMultiplier)
	}
	if cfg.DataAPIRPS != 0.5 {
		t.Errorf("DataAPIRPS = %v", cfg.DataAPIRPS)
	}
	if cfg.FeedRPS != 20 {
		t.Errorf("FeedRPS = %v", cfg.FeedRPS)
	}

	// Untouched values keep their defaults.
	if cfg.Region != "US" {
		t.Errorf("Region = %q", cfg.Region)
	}
}

func TestLoadIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("MENTORA_HTTP_TIMEOUT", "not a duration")
	t.Setenv("MENTORA_MAX_RETRIES", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != DefaultConfig().HTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want default", cfg.HTTPTimeout)
	}
	if cfg.MaxRetries != DefaultConfig().MaxRetries {
		t.Errorf("MaxRetries = %d, want default", cfg.MaxRetries)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero http timeout", func(c *Config) { c.HTTPTimeout = 0 }, true},
		{"zero strategy timeout", func(c *Config) { c.StrategyTimeout = 0 }, true},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }, true},
		{"multiplier at one", func(c *Config) { c.BackoffMultiplier = 1 }, true},
		{"max below initial backoff", func(c *Config) { c.MaxBackoff = c.InitialBackoff / 2 }, true},
		{"zero retries ok", func(c *Config) { c.MaxRetries = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
