package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MaxHands is the most 5-card hands one deck can cover
const MaxHands = 10

// Config represents the application configuration
type Config struct {
	Hands    int    `toml:"hands"`
	Color    string `toml:"color"`
	LogLevel string `toml:"log_level"`
	Seed     *int64 `toml:"seed,omitempty"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Hands:    4,
		Color:    ColorAuto,
		LogLevel: "warn",
	}
}

// Validate checks the config values
func (c *Config) Validate() error {
	if c.Hands < 1 || c.Hands > MaxHands {
		return fmt.Errorf("hands must be between 1 and %d, got %d", MaxHands, c.Hands)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (use auto, always or never)", c.Color)
	}
	return nil
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
	return filepath.Join(GetXDGConfigHome(), "croupier", "config.toml")
}

// LoadConfig loads the config file at the default path
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads the config file at path. A missing file yields
// the defaults; keys absent from the file keep their default values.
func LoadConfigFrom(configPath string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// WriteDefaultConfig creates a default config file at configPath.
// An existing file is left alone unless overwrite is set.
func WriteDefaultConfig(configPath string, overwrite bool) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return nil, fmt.Errorf("config file already exists: %s", configPath)
	}

	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}

	return config, nil
}

// Encode renders the config as TOML
func (c *Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", fmt.Errorf("error encoding config: %w", err)
	}
	return b.String(), nil
}
