package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ihelperdrone/droneops/app/domain"
)

// Config holds all configuration for the client core.
type Config struct {
	LogLevel string

	// Kratos
	KratosPublicURL string

	// Domain backend
	APIBaseURL string

	// DataDir holds the local session cache and the adapter's token file.
	DataDir string

	// DefaultAccessLevel is the access level written when the reconciler
	// auto-creates a profile. Surfaced as configuration because the intended
	// value is still a pending product decision.
	DefaultAccessLevel domain.AccessLevel
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	cfg.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if cfg.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	cfg.APIBaseURL = getEnvOrDefault("API_BASE_URL", "http://localhost:8080/api")

	cfg.DataDir = os.Getenv("DRONEOPS_DATA_DIR")
	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "droneops")
	}

	cfg.DefaultAccessLevel = domain.AccessLevel(getEnvOrDefault("DEFAULT_ACCESS_LEVEL", string(domain.AccessLevelOperator)))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if !isValidURL(c.KratosPublicURL) {
		return fmt.Errorf("invalid Kratos public URL: %s", c.KratosPublicURL)
	}

	if !isValidURL(c.APIBaseURL) {
		return fmt.Errorf("invalid API base URL: %s", c.APIBaseURL)
	}

	if err := c.DefaultAccessLevel.Validate(); err != nil {
		return fmt.Errorf("invalid default access level: %w", err)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsedURL.Scheme != "" && parsedURL.Host != ""
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
