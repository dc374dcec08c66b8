package config

import (
	"strings"
	"testing"
)

// clearEnv unsets every variable Load reads, so tests see a clean slate.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV", "STORAGE_BACKEND",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies the development defaults.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "development" || !cfg.IsDev() {
		t.Errorf("env: got %q", cfg.Env)
	}
	if cfg.StorageBackend != BackendPostgres {
		t.Errorf("storage backend: got %q, want postgres", cfg.StorageBackend)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("addr: got %q", cfg.Addr())
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("cors origins: got %v", cfg.CORSOrigins)
	}
}

// TestLoad_Overrides verifies that environment variables win over
// defaults.
func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.StorageBackend != BackendMemory {
		t.Errorf("storage backend: got %q", cfg.StorageBackend)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("cors origins: got %v", cfg.CORSOrigins)
	}
}

// TestLoad_UnknownBackend verifies rejection of a bad STORAGE_BACKEND.
func TestLoad_UnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "cassandra")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted unknown backend")
	}
}

// TestLoad_ProductionGuards verifies that production mode refuses the
// memory backend and the default database password.
func TestLoad_ProductionGuards(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_BACKEND", "memory")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "memory") {
		t.Errorf("memory in production: got %v", err)
	}

	t.Setenv("STORAGE_BACKEND", "postgres")
	_, err = Load()
	if err == nil || !strings.Contains(err.Error(), "POSTGRES_PASSWORD") {
		t.Errorf("default password in production: got %v", err)
	}

	t.Setenv("POSTGRES_PASSWORD", "real-secret")
	if _, err := Load(); err != nil {
		t.Errorf("valid production config rejected: %v", err)
	}
}

// TestDSN verifies the connection string shape.
func TestDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_DB", "site")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := "postgres://u:p@db:5433/site?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}
