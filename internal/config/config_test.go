package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("a missing config file must fall back to defaults: %v", err)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("expected sqlite driver by default, got %q", cfg.Store.Driver)
	}
	if cfg.Store.SQLitePath != "data/timetrader.db" {
		t.Errorf("unexpected default sqlite path %q", cfg.Store.SQLitePath)
	}
	if cfg.Session.MaxAgeHours != 14*24 {
		t.Errorf("expected two week session max age, got %d", cfg.Session.MaxAgeHours)
	}
	if cfg.Data.Provider != "synthetic" {
		t.Errorf("expected synthetic provider by default, got %q", cfg.Data.Provider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store:
  driver: memory
session:
  max_age_hours: 48
data:
  provider: yahoo
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Store.Driver != "memory" || cfg.Session.MaxAgeHours != 48 || cfg.Data.Provider != "yahoo" {
		t.Errorf("file values not applied: %+v", cfg)
	}

	// Environment wins over the file.
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_MAX_AGE_HOURS", "6")

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Store.Driver != "redis" {
		t.Errorf("env override not applied, got %q", cfg.Store.Driver)
	}
	if cfg.Session.MaxAgeHours != 6 {
		t.Errorf("env max age not applied, got %d", cfg.Session.MaxAgeHours)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config must validate: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cfg := &Config{}
	cfg.Store.Driver = "etcd"
	cfg.Data.Provider = "synthetic"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown store driver must fail validation")
	}

	cfg.Store.Driver = "redis"
	cfg.Store.RedisAddr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("redis driver without an address must fail validation")
	}

	cfg.Store.Driver = "memory"
	cfg.Data.Provider = "bloomberg"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown data provider must fail validation")
	}

	cfg.Data.Provider = "yahoo"
	cfg.Session.MaxAgeHours = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative session max age must fail validation")
	}
}
