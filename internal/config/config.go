// Package config loads server settings from defaults, portfolio.yml and the
// environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/longxinyang/bio/internal/ui"
)

const (
	// DefaultPath is the config file read when --config is not given.
	DefaultPath = "portfolio.yml"

	// EnvPrefix scopes environment overrides: PORTFOLIO_SERVER_PORT -> server.port.
	EnvPrefix = "PORTFOLIO_"
)

var (
	validModes   = map[string]bool{"debug": true, "release": true, "test": true}
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
			TrustDNT:        true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Theme: ThemeConfig{Default: ui.ThemeAuto},
	}
}

// Load reads .env if present, then the given YAML file, then overlays
// PORTFOLIO_* environment variables. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// The hosting platform convention: a bare PORT applies unless the
	// prefixed variable is set.
	if port := os.Getenv("PORT"); port != "" && os.Getenv(EnvPrefix+"SERVER_PORT") == "" {
		if err := k.Set("server.port", port); err != nil {
			return nil, fmt.Errorf("applying PORT: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps PORTFOLIO_SERVER_SHUTDOWN_TIMEOUT to server.shutdown_timeout:
// the first underscore separates the section, the rest belong to the field.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port))
	}
	if !validModes[c.Server.Mode] {
		errs = append(errs, fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level))
	}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format))
	}
	if !c.Theme.Default.Valid() {
		errs = append(errs, fmt.Errorf("invalid theme.default %q: must be one of auto, light, dark", c.Theme.Default))
	}
	return errors.Join(errs...)
}
