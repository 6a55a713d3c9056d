package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Store struct {
		Driver        string `yaml:"driver"` // sqlite | memory | redis
		SQLitePath    string `yaml:"sqlite_path"`
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
	} `yaml:"store"`
	Session struct {
		MaxAgeHours int    `yaml:"max_age_hours"`
		PruneCron   string `yaml:"prune_cron"`
	} `yaml:"session"`
	Data struct {
		Provider string `yaml:"provider"` // synthetic | yahoo
		Proxy    string `yaml:"proxy"`
	} `yaml:"data"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Store.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Store.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Store.RedisPassword = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.Data.Provider = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Data.Proxy = v
	}
	if v := os.Getenv("SESSION_MAX_AGE_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			cfg.Session.MaxAgeHours = hours
		}
	}

	// Defaults
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "sqlite"
	}
	if cfg.Store.SQLitePath == "" {
		cfg.Store.SQLitePath = "data/timetrader.db"
	}
	if cfg.Session.MaxAgeHours == 0 {
		cfg.Session.MaxAgeHours = 14 * 24 // matches the session cookie max-age
	}
	if cfg.Session.PruneCron == "" {
		cfg.Session.PruneCron = "0 0 * * * *" // hourly
	}
	if cfg.Data.Provider == "" {
		cfg.Data.Provider = "synthetic"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "memory", "redis":
	default:
		return fmt.Errorf("store.driver must be sqlite, memory or redis, got %q", c.Store.Driver)
	}
	if c.Store.Driver == "redis" && c.Store.RedisAddr == "" {
		return fmt.Errorf("store.redis_addr is required for the redis driver")
	}
	switch c.Data.Provider {
	case "synthetic", "yahoo":
	default:
		return fmt.Errorf("data.provider must be synthetic or yahoo, got %q", c.Data.Provider)
	}
	if c.Session.MaxAgeHours < 0 {
		return fmt.Errorf("session.max_age_hours must not be negative")
	}
	return nil
}
