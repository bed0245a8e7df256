package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.DefaultSession = "youth"
	cfg.Simulation.Interval = Duration{5 * time.Second}
	cfg.Simulation.Seed = 42
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultSession != "youth" {
		t.Errorf("DefaultSession = %q, want youth", loaded.DefaultSession)
	}
	if loaded.Simulation.Interval.Duration != 5*time.Second {
		t.Errorf("Interval = %v, want 5s", loaded.Simulation.Interval)
	}
	if loaded.Simulation.Seed != 42 {
		t.Errorf("Seed = %d, want 42", loaded.Simulation.Seed)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_session = \"work\"\n[ai]\nmodel = \"gemini-2.0-flash\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q, want gemini-2.0-flash", cfg.AI.Model)
	}
	if cfg.AI.APIKeyEnv != "API_KEY" {
		t.Errorf("APIKeyEnv = %q, want API_KEY default", cfg.AI.APIKeyEnv)
	}
	if cfg.Simulation.Interval.Duration != 20*time.Second {
		t.Errorf("Interval = %v, want 20s default", cfg.Simulation.Interval)
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[simulation]\ninterval = \"soon\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for bad duration")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/config.toml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
	cfg, err := LoadOrDefault("/nonexistent/config.toml")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.DefaultSession != "main" {
		t.Errorf("DefaultSession = %q, want main", cfg.DefaultSession)
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("FLOCK_TEST_KEY", "secret")
	ai := AI{APIKeyEnv: "FLOCK_TEST_KEY"}
	if got := ai.APIKey(); got != "secret" {
		t.Errorf("APIKey() = %q, want secret", got)
	}
}

func TestSavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
