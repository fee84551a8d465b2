package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("EVENTCAL_API_URL", "")
	t.Setenv("EVENTCAL_DATA_DIR", "")
	t.Setenv("EVENTCAL_LOG_LEVEL", "")

	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if cfg.API.BaseURL != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("EVENTCAL_API_URL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := "api:\n  base_url: http://calendar.local:8000\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if cfg.API.BaseURL != "http://calendar.local:8000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("api:\n  base_url: http://from-file\n"), 0644)

	t.Setenv("EVENTCAL_API_URL", "http://from-env")

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if cfg.API.BaseURL != "http://from-env" {
		t.Errorf("environment should override the file, got %q", cfg.API.BaseURL)
	}
}

func TestLoadRawIgnoresEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644)

	t.Setenv("EVENTCAL_API_URL", "http://from-env")
	t.Setenv("EVENTCAL_DATA_DIR", "/from/env")
	t.Setenv("EVENTCAL_LOG_LEVEL", "debug")

	cfg, err := loadRawFrom(path)
	if err != nil {
		t.Fatalf("loadRawFrom() error = %v", err)
	}
	if cfg.API.BaseURL != "" || cfg.Data.Dir != "" {
		t.Errorf("raw load must not pick up env values, got %+v", cfg)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want the file value", cfg.Logging.Level)
	}
}

func TestSetDoesNotBakeEnvIntoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("api:\n  base_url: http://from-file\n"), 0644)

	t.Setenv("EVENTCAL_API_URL", "http://from-env")
	t.Setenv("EVENTCAL_DATA_DIR", "/from/env")

	// The mutate-and-save path: raw load, set one key, save.
	cfg, err := loadRawFrom(path)
	if err != nil {
		t.Fatalf("loadRawFrom() error = %v", err)
	}
	if err := cfg.Set("logging.level", "debug"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := saveTo(path, cfg); err != nil {
		t.Fatalf("saveTo() error = %v", err)
	}

	saved, err := loadRawFrom(path)
	if err != nil {
		t.Fatalf("loadRawFrom() error = %v", err)
	}
	if saved.API.BaseURL != "http://from-file" {
		t.Errorf("saved base_url = %q, env value leaked into the file", saved.API.BaseURL)
	}
	if saved.Data.Dir != "" {
		t.Errorf("saved data.dir = %q, env value leaked into the file", saved.Data.Dir)
	}
	if saved.Logging.Level != "debug" {
		t.Errorf("saved level = %q, want debug", saved.Logging.Level)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("api: [unclosed"), 0644)

	if _, err := loadFrom(path); err == nil {
		t.Errorf("loadFrom() should fail on invalid YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("EVENTCAL_API_URL", "")
	t.Setenv("EVENTCAL_DATA_DIR", "")
	t.Setenv("EVENTCAL_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &Config{}
	want.API.BaseURL = "http://round.trip"
	want.Data.Dir = "/tmp/eventcal"

	if err := saveTo(path, want); err != nil {
		t.Fatalf("saveTo() error = %v", err)
	}

	got, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if got.API.BaseURL != want.API.BaseURL || got.Data.Dir != want.Data.Dir {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetSet(t *testing.T) {
	cfg := &Config{}

	if err := cfg.Set("api.base_url", "http://x"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := cfg.Get("api.base_url")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "http://x" {
		t.Errorf("Get() = %q", got)
	}

	if err := cfg.Set("nope", "x"); err == nil {
		t.Errorf("Set of unknown key should error")
	}
	if _, err := cfg.Get("nope"); err == nil {
		t.Errorf("Get of unknown key should error")
	}
}
