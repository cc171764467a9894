// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig
	Storage StorageConfig
}

// AppConfig holds general application configuration.
type AppConfig struct {
	Environment  string
	LogLevel     slog.Level
	DefaultTheme string
	TrendMonths  int
}

// StorageConfig holds local storage configuration.
type StorageConfig struct {
	// Path is the SQLite database file backing the key-value store.
	Path string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment:  getEnv("ENV", "development"),
			LogLevel:     getEnvAsLogLevel("LOG_LEVEL", slog.LevelInfo),
			DefaultTheme: getEnv("FINDASH_DEFAULT_THEME", "dark"),
			TrendMonths:  getEnvAsInt("FINDASH_TREND_MONTHS", 6),
		},
		Storage: StorageConfig{
			Path: getEnv("FINDASH_STORAGE_PATH", "findash.db"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue slog.Level) slog.Level {
	if value, exists := os.LookupEnv(key); exists {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
