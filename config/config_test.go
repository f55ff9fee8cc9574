package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_ExampleIsValid(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.MaxUploadMB != 32 {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Store.Driver != DriverSQLite || cfg.Store.Path != "./buildtrack.db" {
		t.Fatalf("unexpected store config: %+v", cfg.Store)
	}
	if cfg.Import.ContinueOnRowError || cfg.Import.UseSourceIDs {
		t.Fatalf("expected import options to default to false: %+v", cfg.Import)
	}
}

func TestValidateYAMLContent_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte("log:\n  format: console\n"))
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.Log.Format != "console" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Server.ImportBurst != 10 || cfg.Server.ImportRatePerSec != 5 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.Server)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected allowed origins: %v", cfg.Server.AllowedOrigins)
	}
}

func TestValidateYAMLContent_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Parallel()

	_, err := ValidateYAMLContent([]byte("store:\n  driver: postgres\n"))
	if err == nil {
		t.Fatalf("expected validation error for missing database_url")
	}
	if !strings.Contains(err.Error(), "DatabaseURL") {
		t.Fatalf("unexpected error: %v", err)
	}

	content := []byte("store:\n  driver: Postgres\n  database_url: postgres://localhost:5432/buildtrack\n")
	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("expected postgres config to validate: %v", err)
	}
	if cfg.Store.Driver != DriverPostgres {
		t.Fatalf("expected normalized driver, got %q", cfg.Store.Driver)
	}
}

func TestValidateYAMLContent_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "store:\n  driver: mysql\n"},
		{name: "port out of range", content: "server:\n  port: 70000\n"},
		{name: "zero upload size", content: "server:\n  max_upload_mb: 0\n"},
		{name: "bad log level", content: "log:\n  level: verbose\n"},
		{name: "invalid yaml", content: "server: [\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ValidateYAMLContent([]byte(tc.content)); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestMaxUploadBytes(t *testing.T) {
	t.Parallel()

	if got := (ServerConfig{MaxUploadMB: 2}).MaxUploadBytes(); got != 2<<20 {
		t.Fatalf("expected %d, got %d", 2<<20, got)
	}
}

func TestInitLogger(t *testing.T) {
	if err := InitLogger(LogConfig{Level: "debug", Format: "console"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := InitLogger(LogConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
