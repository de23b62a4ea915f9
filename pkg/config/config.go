package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Every environment
// variable is read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External stats API
	CFBD CFBDConfig

	// Fallback roster scraping
	Roster RosterConfig

	// Outbound HTTP
	HTTPTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Monitoring
	MetricsEnabled bool
}

// CFBDConfig holds the college football stats API configuration.
type CFBDConfig struct {
	BaseURL      string
	APIKey       string
	RateLimitRPS float64
}

// RosterConfig holds the fallback roster scraper configuration. The
// scraper is only consulted when the primary roster read returns nothing.
type RosterConfig struct {
	Enabled bool
	BaseURL string
}

// Load reads configuration from environment variables, optionally
// seeded from a .env file.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		CFBD: CFBDConfig{
			BaseURL:      getEnv("CFBD_BASE_URL", "https://api.collegefootballdata.com"),
			APIKey:       getEnv("CFBD_API_KEY", ""),
			RateLimitRPS: getEnvAsFloat("CFBD_RATE_LIMIT_RPS", 5),
		},

		Roster: RosterConfig{
			Enabled: getEnvAsBool("ROSTER_FALLBACK_ENABLED", false),
			BaseURL: getEnv("ROSTER_FALLBACK_BASE_URL", ""),
		},

		HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", "30s"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks cross-field constraints.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Roster.Enabled && c.Roster.BaseURL == "" {
		return fmt.Errorf("ROSTER_FALLBACK_BASE_URL is required when roster fallback is enabled")
	}

	if c.CFBD.RateLimitRPS <= 0 {
		return fmt.Errorf("CFBD_RATE_LIMIT_RPS must be positive")
	}

	return nil
}

// loadEnvFile tries to load .env from a few likely locations.
func loadEnvFile() {
	paths := []string{
		".env",
		"backend/.env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
