package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihelperdrone/droneops/app/domain"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KRATOS_PUBLIC_URL", "http://localhost:4433")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("DRONEOPS_DATA_DIR", "/tmp/droneops-test")
	t.Setenv("DEFAULT_ACCESS_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:4433", cfg.KratosPublicURL)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/droneops-test", cfg.DataDir)
	assert.Equal(t, domain.AccessLevelOperator, cfg.DefaultAccessLevel)
}

func TestLoadRequiresKratosURL(t *testing.T) {
	t.Setenv("KRATOS_PUBLIC_URL", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "KRATOS_PUBLIC_URL")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KRATOS_PUBLIC_URL", "https://auth.example.com")
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DRONEOPS_DATA_DIR", "/tmp/droneops-test")
	t.Setenv("DEFAULT_ACCESS_LEVEL", "USER")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://auth.example.com", cfg.KratosPublicURL)
	assert.Equal(t, "https://api.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, domain.AccessLevelUser, cfg.DefaultAccessLevel)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:           "info",
			KratosPublicURL:    "http://localhost:4433",
			APIBaseURL:         "http://localhost:8080/api",
			DataDir:            "/tmp/droneops-test",
			DefaultAccessLevel: domain.AccessLevelOperator,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"bad kratos url", func(c *Config) { c.KratosPublicURL = "not-a-url" }, true},
		{"bad api url", func(c *Config) { c.APIBaseURL = "" }, true},
		{"bad access level", func(c *Config) { c.DefaultAccessLevel = "SUPERVISOR" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
