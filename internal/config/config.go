package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Config holds the application configuration.
// It is populated from environment variables (optionally seeded from .env).
type Config struct {
	App      AppConfig
	Log      LogConfig
	Scenario ScenarioConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
}

type LogConfig struct {
	Level string // zerolog level name: trace, debug, info, warn, error
}

// ScenarioConfig is the contract the driver signs on start-up
type ScenarioConfig struct {
	AuthorName string
	BookTitle  string
	Date       string
	Royalties  int64
}

var environments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// Load reads config from environment variables
func Load() (*Config, error) {
	royalties, err := getEnvInt64("SCENARIO_ROYALTIES", 1000)
	if err != nil {
		return nil, fmt.Errorf("invalid SCENARIO_ROYALTIES: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Contracts"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Scenario: ScenarioConfig{
			AuthorName: getEnv("SCENARIO_AUTHOR", "Jane Austen"),
			BookTitle:  getEnv("SCENARIO_BOOK", "Emma"),
			Date:       getEnv("SCENARIO_DATE", "2020-01-01"),
			Royalties:  royalties,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the environment name and log level
func (c *Config) Validate() error {
	if !environments[c.App.Environment] {
		return fmt.Errorf("APP_ENV %q is not one of development, staging, production", c.App.Environment)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// ParseLevel converts the configured level name into a zerolog.Level
func (l LogConfig) ParseLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(l.Level)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.ParseInt(valueStr, 10, 64)
}
