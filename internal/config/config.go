package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Colony   ColonyConfig   `yaml:"colony"`
	Defs     DefsConfig     `yaml:"defs"`
	Passion  PassionConfig  `yaml:"passion"`
	Scan     ScanConfig     `yaml:"scan"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type ColonyConfig struct {
	URL string `yaml:"url"`
}

type DefsConfig struct {
	Dir string `yaml:"dir"`
}

type PassionConfig struct {
	// Provider is "native" or "external".
	Provider string `yaml:"provider"`
	URL      string `yaml:"url"`
}

type ScanConfig struct {
	Enabled    bool `yaml:"enabled"`
	IntervalMs int  `yaml:"interval_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) ScanInterval() time.Duration {
	return time.Duration(c.Scan.IntervalMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Colony: ColonyConfig{
			URL: "nats://localhost:4222",
		},
		Passion: PassionConfig{
			Provider: "native",
			URL:      "http://localhost:8710",
		},
		Scan: ScanConfig{
			Enabled:    true,
			IntervalMs: 15000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Passion.Provider != "native" && cfg.Passion.Provider != "external" {
		return nil, fmt.Errorf("unknown passion provider %q", cfg.Passion.Provider)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("QM_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("QM_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("QM_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("QM_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("QM_COLONY_URL"); v != "" {
		cfg.Colony.URL = v
	}
	if v := os.Getenv("QM_DEFS_DIR"); v != "" {
		cfg.Defs.Dir = v
	}
	if v := os.Getenv("QM_PASSION_PROVIDER"); v != "" {
		cfg.Passion.Provider = v
	}
	if v := os.Getenv("QM_PASSION_URL"); v != "" {
		cfg.Passion.URL = v
	}
	if v := os.Getenv("QM_SCAN_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scan.Enabled = b
		}
	}
	if v := os.Getenv("QM_SCAN_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.IntervalMs = n
		}
	}
	if v := os.Getenv("QM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
