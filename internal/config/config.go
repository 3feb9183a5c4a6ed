package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	// URL is the MongoDB connection string. It may be empty: the API still
	// serves requests without a store, surfacing "store unavailable" on data
	// endpoints and reporting the state on /test.
	URL            string
	Name           string
	ConnectTimeout time.Duration
}

// Load reads config from environment variables.
func Load() *Config {
	return &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Marketplace API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "8000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			Name:           getEnv("DATABASE_NAME", "marketplace"),
			ConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
	}
}

// HasStore reports whether a store connection string was provided at all.
func (c *Config) HasStore() bool {
	return c.Database.URL != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
