package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

var (
	cfgFile = "termfour/config.json"
	envFile = "termfour/.env"
)

const maxNameLength = 24

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are "#rrggbb" hex strings.
type ConfigColors struct {
	Background string `json:"background"`
	Slot       string `json:"slot"`
	Focus      string `json:"focus"`
	PlayerA    string `json:"player_a"`
	PlayerB    string `json:"player_b"`
}

type ConfigSymbols struct {
	Stone rune `json:"stone"`
	Slot  rune `json:"slot"`
}

type Theme struct {
	ShowPreview bool          `json:"show_preview"`
	Colors      ConfigColors  `json:"colors"`
	Symbols     ConfigSymbols `json:"symbols"`
}

// PlayersConfig holds the display names of both players.
type PlayersConfig struct {
	A string `json:"a"`
	B string `json:"b"`
}

// LogConfig controls the log file. An empty File means the XDG state directory.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Config struct {
	Theme        Theme         `json:"theme"`
	Players      PlayersConfig `json:"players"`
	FreezeMillis int           `json:"freeze_ms"`
	Log          LogConfig     `json:"log"`
}

// InitConfig loads the config file from the XDG config directories, applies
// environment overrides and validates the result.
func InitConfig() (*Config, error) {
	paths := []string{".env"}
	if p, err := xdg.SearchConfigFile(envFile); err == nil {
		paths = append(paths, p)
	}
	if err := loadEnvFiles(paths...); err != nil {
		return nil, err
	}
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config at path on top of DefaultConfig. An empty path yields the defaults.
// Environment overrides are applied before validation.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := readCfgFile(path, &config); err != nil {
			return nil, err
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Freeze returns how long the board stays locked after a round ends.
func (c *Config) Freeze() time.Duration {
	return time.Duration(c.FreezeMillis) * time.Millisecond
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Stone, c.Theme.Symbols.Slot} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	colors := map[string]string{
		"background": c.Theme.Colors.Background,
		"slot":       c.Theme.Colors.Slot,
		"focus":      c.Theme.Colors.Focus,
		"player_a":   c.Theme.Colors.PlayerA,
		"player_b":   c.Theme.Colors.PlayerB,
	}
	for name, v := range colors {
		if _, err := ParseHexColor(v); err != nil {
			return &InvalidConfig{fmt.Sprintf("color %s: %s", name, err)}
		}
	}
	if strings.EqualFold(c.Theme.Colors.PlayerA, c.Theme.Colors.PlayerB) {
		return &InvalidConfig{"players must have different colors"}
	}
	for _, name := range []string{c.Players.A, c.Players.B} {
		if strings.TrimSpace(name) == "" {
			return &InvalidConfig{"player names must not be empty"}
		}
		if utf8.RuneCountInString(name) > maxNameLength {
			return &InvalidConfig{fmt.Sprintf("player name %q is longer than %d characters", name, maxNameLength)}
		}
	}
	if c.Players.A == c.Players.B {
		return &InvalidConfig{"players must have different names"}
	}
	if c.FreezeMillis < 0 || c.FreezeMillis > 10000 {
		return &InvalidConfig{"freeze_ms must be between 0 and 10000"}
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// ParseHexColor parses "#rrggbb" into a 24-bit value.
func ParseHexColor(s string) (int32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%q is not in #rrggbb form", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not in #rrggbb form", s)
	}
	return int32(v), nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// applyEnv overrides selected settings from TERMFOUR_* environment variables.
func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("TERMFOUR_PLAYER_A")); v != "" {
		c.Players.A = v
	}
	if v := strings.TrimSpace(os.Getenv("TERMFOUR_PLAYER_B")); v != "" {
		c.Players.B = v
	}
	if v := strings.TrimSpace(os.Getenv("TERMFOUR_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("TERMFOUR_LOG_FILE")); v != "" {
		c.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("TERMFOUR_FREEZE_MS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("TERMFOUR_FREEZE_MS: %q is not a number", v)}
		}
		c.FreezeMillis = n
	}
	return nil
}

// loadEnvFiles loads the given .env files, skipping those that do not exist.
// Variables already set in the environment win.
func loadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
