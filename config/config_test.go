package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Players.A != "Pink" || cfg.Players.B != "Teal" {
		t.Errorf("players = %+v, want Pink/Teal", cfg.Players)
	}
	if cfg.Freeze() != 1500*time.Millisecond {
		t.Errorf("Freeze() = %v, want 1.5s", cfg.Freeze())
	}
	if cfg.Theme.Colors.PlayerA != "#E95379" {
		t.Errorf("PlayerA color = %q", cfg.Theme.Colors.PlayerA)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"players": {"a": "Ada", "b": "Bob"}, "freeze_ms": 200}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Players.A != "Ada" || cfg.Players.B != "Bob" {
		t.Errorf("players = %+v, want Ada/Bob", cfg.Players)
	}
	if cfg.FreezeMillis != 200 {
		t.Errorf("FreezeMillis = %d, want 200", cfg.FreezeMillis)
	}
	// Untouched sections keep their defaults.
	if cfg.Theme.Symbols.Stone != '●' {
		t.Errorf("Stone symbol = %q, want default", cfg.Theme.Symbols.Stone)
	}
	if DefaultConfig.Players.A != "Pink" {
		t.Error("Load must not modify DefaultConfig")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Players.A != "Pink" {
		t.Errorf("Players.A = %q, want Pink", cfg.Players.A)
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := writeTempConfig(t, `{"players": `)
	_, err := Load(path)
	var invalid *InvalidConfig
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidConfig, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TERMFOUR_PLAYER_A", "Red")
	t.Setenv("TERMFOUR_PLAYER_B", "Yellow")
	t.Setenv("TERMFOUR_FREEZE_MS", "0")
	t.Setenv("TERMFOUR_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Players.A != "Red" || cfg.Players.B != "Yellow" {
		t.Errorf("players = %+v, want Red/Yellow", cfg.Players)
	}
	if cfg.FreezeMillis != 0 {
		t.Errorf("FreezeMillis = %d, want 0", cfg.FreezeMillis)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestEnvFreezeNotANumber(t *testing.T) {
	t.Setenv("TERMFOUR_FREEZE_MS", "soon")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric TERMFOUR_FREEZE_MS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty name", func(c *Config) { c.Players.A = "  " }},
		{"same names", func(c *Config) { c.Players.B = c.Players.A }},
		{"long name", func(c *Config) { c.Players.B = "abcdefghijklmnopqrstuvwxyz" }},
		{"bad color", func(c *Config) { c.Theme.Colors.Slot = "red" }},
		{"short color", func(c *Config) { c.Theme.Colors.Focus = "#fff" }},
		{"same colors", func(c *Config) { c.Theme.Colors.PlayerB = "#e95379" }},
		{"control symbol", func(c *Config) { c.Theme.Symbols.Stone = '\t' }},
		{"negative freeze", func(c *Config) { c.FreezeMillis = -1 }},
		{"huge freeze", func(c *Config) { c.FreezeMillis = 60000 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		c := DefaultConfig
		tt.modify(&c)
		err := c.Validate()
		var invalid *InvalidConfig
		if !errors.As(err, &invalid) {
			t.Errorf("%s: expected InvalidConfig, got %v", tt.name, err)
		}
	}

	c := DefaultConfig
	if err := c.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	// Every name the logger understands is accepted.
	for _, level := range []string{"debug", "INFO", "warn", " warning ", "error"} {
		c := DefaultConfig
		c.Log.Level = level
		if err := c.Validate(); err != nil {
			t.Errorf("log level %q: %v", level, err)
		}
	}
}

func TestEnvLogLevelWarning(t *testing.T) {
	t.Setenv("TERMFOUR_LOG_LEVEL", "warning")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warning" {
		t.Errorf("Log.Level = %q, want warning", cfg.Log.Level)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.env")
	if err := os.WriteFile(good, []byte("TERMFOUR_TEST_ENV_NAME=Ada\n"), 0644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("TERMFOUR_TEST_ENV_NAME", "")
	os.Unsetenv("TERMFOUR_TEST_ENV_NAME")

	if err := loadEnvFiles(filepath.Join(dir, "absent.env"), good); err != nil {
		t.Fatalf("loadEnvFiles: %v", err)
	}
	if v := os.Getenv("TERMFOUR_TEST_ENV_NAME"); v != "Ada" {
		t.Errorf("TERMFOUR_TEST_ENV_NAME = %q, want Ada", v)
	}
}

func TestLoadEnvFilesBrokenFile(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.env")
	if err := os.WriteFile(bad, []byte("BAD-KEY=1\n"), 0644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	err := loadEnvFiles(bad)
	if err == nil {
		t.Fatal("expected error for a broken .env file")
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestParseHexColor(t *testing.T) {
	v, err := ParseHexColor("#27D796")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if v != 0x27D796 {
		t.Errorf("ParseHexColor = %06x, want 27d796", v)
	}
	for _, s := range []string{"", "27D796", "#27D79", "#GGGGGG"} {
		if _, err := ParseHexColor(s); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", s)
		}
	}
}

func TestSaveCfgFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig
	c.Players.A = "Ada"
	if err := saveCfgFile(path, &c, 0644); err != nil {
		t.Fatalf("saveCfgFile: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Players.A != "Ada" {
		t.Errorf("Players.A = %q, want Ada", loaded.Players.A)
	}
}
