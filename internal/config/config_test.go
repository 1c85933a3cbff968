package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DATABASE_PATH", "/data/almanac.db")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_FILE", "/var/log/almanac/api.log")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/almanac.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/almanac.db")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.LogFile != "/var/log/almanac/api.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "/var/log/almanac/api.log")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv()

	os.Setenv("PORT", "99999")
	defer clearEnv()

	if _, err := Load(); err == nil {
		t.Error("Load() with out-of-range PORT should fail")
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv()

	os.Setenv("ENV", "testing")
	defer clearEnv()

	if _, err := Load(); err == nil {
		t.Error("Load() with unknown ENV should fail")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Port:      0,
		Env:       "nope",
		LogLevel:  "loud",
		LogFormat: "xml",
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	// errors.Join output mentions each failing field
	msg := err.Error()
	for _, want := range []string{"PORT", "ENV", "DATABASE_PATH", "LOG_LEVEL", "LOG_FORMAT"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}

func TestEnvHelpers(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("development helpers inconsistent")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Error("production helpers inconsistent")
	}
}

func clearEnv() {
	for _, key := range []string{"PORT", "ENV", "DATABASE_PATH", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"} {
		os.Unsetenv(key)
	}
}
