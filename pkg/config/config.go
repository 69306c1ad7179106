// Package config reads application configuration from environment
// variables.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Backend       BackendConfig
	Observability ObservabilityConfig
	Log           LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// BackendConfig points at the REST backend that persists confirmed
// transactions, categories and budgets.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_BASE_URL", "http://localhost:3000/api"),
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 10),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Backend.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("BACKEND_TIMEOUT_SECONDS must be positive, got %d", cfg.Backend.TimeoutSeconds)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Timeout returns the backend request timeout as a duration
func (c *BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
