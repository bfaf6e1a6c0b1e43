package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/MoreDelay/inori/internal/keymap"
	"github.com/MoreDelay/inori/internal/logging"
	"github.com/MoreDelay/inori/internal/match"
)

const appName = "inori"

// ErrUnknownCommand is returned for a [keybindings] entry naming no command.
var ErrUnknownCommand = errors.New("unknown command in keybindings")

type Config struct {
	MPD     MPDConfig `koanf:"mpd"`
	Matcher string    `koanf:"matcher"` // "fuzzy" or "fzf"
	Screen  string    `koanf:"screen"`  // start screen: "queue" or "library"

	// Command name -> key sequence, e.g. toggle_playpause = "C-p"
	Keybindings map[string]string `koanf:"keybindings"`

	// Theme slot -> style
	Theme map[string]StyleConfig `koanf:"theme"`

	Log LogConfig `koanf:"log"`
}

// MPDConfig holds the music server connection settings.
type MPDConfig struct {
	Host           string `koanf:"host"`
	Port           int    `koanf:"port"`
	Password       string `koanf:"password"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`
}

// StyleConfig is one theme slot. Colors are "#rrggbb" or an ANSI number.
type StyleConfig struct {
	Fg        string `koanf:"fg"`
	Bg        string `koanf:"bg"`
	Bold      bool   `koanf:"bold"`
	Italic    bool   `koanf:"italic"`
	Underline bool   `koanf:"underline"`
	Dim       bool   `koanf:"dim"`
}

// LogConfig holds the log file settings.
type LogConfig struct {
	Level      string `koanf:"level"` // debug, info, warn, error or off
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// Load reads the configuration. When path is empty the default locations
// are tried in priority order (last wins); otherwise only path is read and
// it must exist. Environment variables override the files.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	paths := getConfigPaths()
	if path != "" {
		paths = []string{expandPath(path)}
		if _, err := os.Stat(paths[0]); err != nil {
			return nil, err
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", p, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/inori/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. $XDG_CONFIG_HOME/inori/config.toml
	if xdg.ConfigHome != "" {
		p := filepath.Join(xdg.ConfigHome, appName, "config.toml")
		if len(paths) == 0 || paths[0] != p {
			paths = append(paths, p)
		}
	}

	// 3. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// loadDotEnv loads a .env file without overriding the real environment.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%s: %w", path, err)
}

// applyEnv applies MPD_HOST, MPD_PORT and MPD_PASSWORD. MPD_HOST may carry
// a password as "password@host".
func applyEnv(cfg *Config) {
	if host := os.Getenv("MPD_HOST"); host != "" {
		if pw, h, ok := strings.Cut(host, "@"); ok && h != "" {
			cfg.MPD.Password = pw
			host = h
		}
		cfg.MPD.Host = host
	}
	if port := os.Getenv("MPD_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.MPD.Port = n
		}
	}
	if pw := os.Getenv("MPD_PASSWORD"); pw != "" {
		cfg.MPD.Password = pw
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks names, keys and colors.
func (c *Config) Validate() error {
	if _, err := match.New(c.Matcher); err != nil {
		return fmt.Errorf("matcher %q: %w", c.Matcher, err)
	}
	switch c.Screen {
	case "", "queue", "library":
	default:
		return fmt.Errorf("screen %q: must be \"queue\" or \"library\"", c.Screen)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	for slot, style := range c.Theme {
		if !IsThemeSlot(slot) {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
		}
		for _, color := range []string{style.Fg, style.Bg} {
			if err := validateColor(color); err != nil {
				return fmt.Errorf("theme.%s: %w", slot, err)
			}
		}
	}
	if _, _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Bindings returns the default key bindings with the configured overrides.
func (c *Config) Bindings() ([]keymap.Binding, error) {
	bindings, err := keymap.WithOverrides(c.Keybindings)
	if errors.Is(err, keymap.ErrUnknownAction) {
		return nil, fmt.Errorf("%w: %w", ErrUnknownCommand, err)
	}
	if err != nil {
		return nil, err
	}
	if _, err := keymap.NewResolver(bindings); err != nil {
		return nil, fmt.Errorf("keybindings: %w", err)
	}
	return bindings, nil
}

// GetMPDConfig returns the connection settings with defaults applied.
func (c *Config) GetMPDConfig() MPDConfig {
	cfg := c.MPD
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = 6600
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 5
	}
	return cfg
}

// Timeout returns the dial timeout.
func (m MPDConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// GetMatcher returns the matcher name with the default applied.
func (c *Config) GetMatcher() string {
	if c.Matcher == "" {
		return match.NameFuzzy
	}
	return c.Matcher
}

// GetScreen returns the start screen name with the default applied.
func (c *Config) GetScreen() string {
	if c.Screen == "" {
		return "queue"
	}
	return c.Screen
}

// GetLogConfig returns the log settings with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 28
	}
	return cfg
}

// Logging converts the log settings for the logging package.
func (l LogConfig) Logging() logging.Config {
	return logging.Config{
		Level:      l.Level,
		File:       l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}
