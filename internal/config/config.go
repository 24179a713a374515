// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Catalog   CatalogConfig   `toml:"catalog"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Events    EventsConfig    `toml:"events"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type CatalogConfig struct {
	// Strict enforces the rating range and episode count rules on new entries.
	Strict *bool `toml:"strict"`
	// SeedDefaults loads the built-in sample entries before Seed entries.
	SeedDefaults *bool       `toml:"seed_defaults"`
	Seed         []SeedEntry `toml:"seed"`
}

// SeedEntry is a catalog entry loaded at startup.
type SeedEntry struct {
	Title        string  `toml:"title"`
	CoverURL     string  `toml:"cover_url"`
	Type         string  `toml:"type"`
	Year         int     `toml:"year"`
	Rating       float64 `toml:"rating"`
	EpisodeCount int     `toml:"episodes"` // 0 = none
	Description  string  `toml:"description"`
	Watched      bool    `toml:"watched"`
	Owned        bool    `toml:"owned"`
}

type RateLimitConfig struct {
	RPS   float64 `toml:"rps"` // 0 disables limiting
	Burst int     `toml:"burst"`
}

type EventsConfig struct {
	// Retention is a Go duration; "0" keeps every event.
	Retention string `toml:"retention"`
}

// RetentionDuration parses Retention. Call after Validate.
func (c EventsConfig) RetentionDuration() time.Duration {
	d, _ := time.ParseDuration(c.Retention)
	return d
}

// IsStrict reports whether strict entry validation is enabled.
func (c CatalogConfig) IsStrict() bool {
	return c.Strict == nil || *c.Strict
}

// UseDefaultSeed reports whether the built-in sample entries are loaded.
func (c CatalogConfig) UseDefaultSeed() bool {
	return c.SeedDefaults == nil || *c.SeedDefaults
}

// Load reads, parses and validates the configuration file.
// A .env file next to the config is loaded into the environment first.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file and applies
// defaults, skipping validation.
func LoadWithoutValidation(path string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults(&md)
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults(nil)
	return &cfg
}

// applyDefaults fills unset fields. md, when non-nil, tells an explicit
// rps = 0 apart from an omitted one.
func (c *Config) applyDefaults(md *toml.MetaData) {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Events.Retention == "" {
		c.Events.Retention = "24h"
	}
	if md == nil || !md.IsDefined("ratelimit", "rps") {
		c.RateLimit.RPS = 20
		if c.RateLimit.Burst == 0 {
			c.RateLimit.Burst = 40
		}
	}
}

// loadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces variable references with environment values.
// Unresolvable references are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case "-":
			if !ok || value == "" {
				return arg
			}
			return value
		case "?":
			if !ok || value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
