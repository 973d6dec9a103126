package config

import (
	"testing"
	"time"

	"github.com/kazfoot/kpl-fantasy/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_STORAGE_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_STORAGE_DRIVER")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_FactsRequiresTokenWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FACTS_ENABLED", "true")
	t.Setenv("FACTS_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FACTS_ENABLED=true without FACTS_TOKEN")
	}
}

func TestLoad_FactsConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FACTS_ENABLED", "true")
	t.Setenv("FACTS_BASE_URL", "https://facts.example.kz")
	t.Setenv("FACTS_TOKEN", "token-123")
	t.Setenv("FACTS_TIMEOUT", "8s")
	t.Setenv("FACTS_MAX_RETRIES", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.FactsEnabled {
		t.Fatalf("expected FactsEnabled=true")
	}
	if cfg.FactsBaseURL != "https://facts.example.kz" {
		t.Fatalf("unexpected FactsBaseURL: %q", cfg.FactsBaseURL)
	}
	if cfg.FactsToken != "token-123" {
		t.Fatalf("unexpected FactsToken")
	}
	if cfg.FactsTimeout != 8*time.Second {
		t.Fatalf("unexpected FactsTimeout: %s", cfg.FactsTimeout)
	}
	if cfg.FactsMaxRetries != 2 {
		t.Fatalf("unexpected FactsMaxRetries: %d", cfg.FactsMaxRetries)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.ServiceName != "kpl-fantasy-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if !cfg.CacheEnabled {
		t.Fatalf("expected CacheEnabled=true by default")
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected http timeouts: %s / %s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}
