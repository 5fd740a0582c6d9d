package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/longxinyang/bio/internal/ui"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("expected default mode release, got %q", cfg.Server.Mode)
	}
	if cfg.Theme.Default != ui.ThemeAuto {
		t.Errorf("expected default theme auto, got %q", cfg.Theme.Default)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Server.Port != DefaultConfig().Server.Port {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	data := `server:
  port: 9000
  mode: debug
  shutdown_timeout: 3s
  trust_dnt: false
log:
  level: debug
  format: json
theme:
  default: dark
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9000 || cfg.Server.Mode != "debug" {
		t.Errorf("server: got %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("shutdown_timeout: got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.TrustDNT {
		t.Error("trust_dnt should be false")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log: got %+v", cfg.Log)
	}
	if cfg.Theme.Default != ui.ThemeDark {
		t.Errorf("theme.default: got %q", cfg.Theme.Default)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Log.File != "" {
		t.Errorf("log.file: got %q", cfg.Log.File)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_SERVER_PORT", "9100")
	t.Setenv("PORTFOLIO_SERVER_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "warn")
	t.Setenv("PORTFOLIO_THEME_DEFAULT", "light")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("env should override file port, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("shutdown_timeout: got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level: got %q", cfg.Log.Level)
	}
	if cfg.Theme.Default != ui.ThemeLight {
		t.Errorf("theme.default: got %q", cfg.Theme.Default)
	}
}

func TestPlainPortFallback(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yml")

	t.Setenv("PORT", "3000")
	cfg, err := Load(missing)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("PORT should apply, got %d", cfg.Server.Port)
	}

	t.Setenv("PORTFOLIO_SERVER_PORT", "4000")
	cfg, err = Load(missing)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("prefixed variable should win over PORT, got %d", cfg.Server.Port)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"PORTFOLIO_SERVER_PORT":             "server.port",
		"PORTFOLIO_SERVER_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
		"PORTFOLIO_LOG_FILE":                "log.file",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"no timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "shutdown_timeout"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad theme", func(c *Config) { c.Theme.Default = "sepia" }, "theme.default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = -1
	cfg.Log.Format = "xml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"server.port", "log.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error should mention %q: %v", want, err)
		}
	}
}
