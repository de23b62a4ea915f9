package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected Port to be 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}
	if cfg.CFBD.BaseURL != "https://api.collegefootballdata.com" {
		t.Errorf("Unexpected CFBD base URL: %s", cfg.CFBD.BaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("Expected HTTPTimeout 30s, got %s", cfg.HTTPTimeout)
	}
	if cfg.Roster.Enabled {
		t.Error("Expected roster fallback disabled by default")
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("CFBD_API_KEY", "test-key")
	os.Setenv("CFBD_RATE_LIMIT_RPS", "2.5")
	os.Setenv("LOG_LEVEL", "warn")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("CFBD_API_KEY")
		os.Unsetenv("CFBD_RATE_LIMIT_RPS")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}
	if cfg.CFBD.APIKey != "test-key" {
		t.Errorf("Expected CFBD API key to be set, got %q", cfg.CFBD.APIKey)
	}
	if cfg.CFBD.RateLimitRPS != 2.5 {
		t.Errorf("Expected rate limit 2.5, got %v", cfg.CFBD.RateLimitRPS)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected LogLevel warn, got %s", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "sandbox")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject unknown ENV value")
	}
}

func TestLoadRejectsFallbackWithoutBaseURL(t *testing.T) {
	os.Setenv("ROSTER_FALLBACK_ENABLED", "true")
	defer os.Unsetenv("ROSTER_FALLBACK_ENABLED")

	if _, err := Load(); err == nil {
		t.Error("Load() should require a base URL when roster fallback is enabled")
	}
}
