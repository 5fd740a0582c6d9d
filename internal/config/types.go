package config

import (
	"strconv"
	"time"

	"github.com/longxinyang/bio/internal/ui"
)

// Config is the top-level server configuration, corresponding to portfolio.yml.
type Config struct {
	Server ServerConfig `yaml:"server" koanf:"server"`
	Log    LogConfig    `yaml:"log" koanf:"log"`
	Theme  ThemeConfig  `yaml:"theme" koanf:"theme"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	Mode            string        `yaml:"mode" koanf:"mode"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
	// TrustDNT drops the hashed client id from request logs when DNT: 1 is sent.
	TrustDNT bool `yaml:"trust_dnt" koanf:"trust_dnt"`
}

// LogConfig selects level, encoding and an optional rotating file sink.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	File   string `yaml:"file" koanf:"file"`
}

// ThemeConfig is the fallback used when the client sends no color scheme hint.
type ThemeConfig struct {
	Default ui.ThemePreference `yaml:"default" koanf:"default"`
}

// Addr is the listen address for the configured port.
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}
