package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	// Seed fixes every new game to the same deal when set
	Seed      *uint64 `toml:"seed,omitempty"`
	DrawCount int     `toml:"draw_count"`
	Color     string  `toml:"color"`
	LogLevel  string  `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DrawCount: 3,
		Color:     ColorAuto,
		LogLevel:  "info",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "patience", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config file, creating its directory if needed
func Save(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Validate rejects values the game cannot use
func (c *Config) Validate() error {
	if c.DrawCount < 1 || c.DrawCount > 24 {
		return fmt.Errorf("draw_count must be between 1 and 24, got %d", c.DrawCount)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SetSeed pins the seed in the config file
func SetSeed(seed uint64) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.Seed = &seed
	return Save(config)
}

// ClearSeed removes a pinned seed so every game is dealt fresh
func ClearSeed() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.Seed = nil
	return Save(config)
}

// ParseLogLevel maps a level name to its slog level
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
