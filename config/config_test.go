package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Environment != "development" {
		t.Errorf("expected development, got %q", cfg.App.Environment)
	}
	if cfg.App.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.App.LogLevel)
	}
	if cfg.App.TrendMonths != 6 {
		t.Errorf("expected 6 trend months, got %d", cfg.App.TrendMonths)
	}
	if cfg.Storage.Path != "findash.db" {
		t.Errorf("expected findash.db, got %q", cfg.Storage.Path)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("FINDASH_STORAGE_PATH", "/tmp/findash-test.db")
	t.Setenv("FINDASH_TREND_MONTHS", "12")

	cfg := Load()

	if cfg.App.Environment != "production" {
		t.Errorf("expected production, got %q", cfg.App.Environment)
	}
	if cfg.App.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.App.LogLevel)
	}
	if cfg.Storage.Path != "/tmp/findash-test.db" {
		t.Errorf("expected /tmp/findash-test.db, got %q", cfg.Storage.Path)
	}
	if cfg.App.TrendMonths != 12 {
		t.Errorf("expected 12 trend months, got %d", cfg.App.TrendMonths)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("FINDASH_TREND_MONTHS", "many")

	cfg := Load()

	if cfg.App.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.App.LogLevel)
	}
	if cfg.App.TrendMonths != 6 {
		t.Errorf("expected 6 trend months, got %d", cfg.App.TrendMonths)
	}
}
