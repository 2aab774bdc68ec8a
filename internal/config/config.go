package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/chatstyle/internal/style"
	"github.com/sadopc/chatstyle/internal/theme"
)

// EnvPrefix prefixes every environment override, e.g. CHATSTYLE_PRESET.
const EnvPrefix = "CHATSTYLE_"

// Config holds all application configuration.
type Config struct {
	Preset   string       `yaml:"preset" env:"PRESET"`
	Preview  bool         `yaml:"preview" env:"PREVIEW"`
	Format   string       `yaml:"format" env:"FORMAT"` // "css", "json" or "yaml"
	Selector string       `yaml:"selector" env:"SELECTOR"`
	Color    bool         `yaml:"color" env:"COLOR"`
	LogLevel string       `yaml:"log_level" env:"LOG_LEVEL"`
	Editor   EditorConfig `yaml:"editor" envPrefix:"EDITOR_"`
}

// EditorConfig holds interactive editor settings.
type EditorConfig struct {
	ShowPreview bool   `yaml:"show_preview" env:"SHOW_PREVIEW"`
	Palette     string `yaml:"palette" env:"PALETTE"`
}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Preset:   "default",
		Format:   string(style.FormatCSS),
		Selector: style.DefaultSelector,
		LogLevel: "warn",
		Editor: EditorConfig{
			ShowPreview: true,
			Palette:     "default",
		},
	}
}

// ConfigDir returns the chatstyle configuration directory path.
// It uses os.UserConfigDir to locate the base config directory and
// appends "chatstyle" to it, typically resulting in ~/.config/chatstyle/.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, "chatstyle"), nil
}

// DefaultPath returns ConfigDir()/config.yaml.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads a Config from the YAML file at path. If the file does not exist,
// it returns DefaultConfig without error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadDefault loads configuration from the default path
// (ConfigDir()/config.yaml).
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// ApplyEnv overlays CHATSTYLE_* environment variables on c. Unset variables
// leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	if !theme.Has(c.Preset) {
		errs = append(errs, fmt.Errorf("unknown preset %q (available: %s)",
			c.Preset, strings.Join(theme.PresetNames(), ", ")))
	}
	if _, err := style.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if !validLogLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log level %q (available: %s)",
			c.LogLevel, strings.Join(LogLevels, ", ")))
	}
	return errors.Join(errs...)
}

func validLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Save writes the Config to the YAML file at path, creating any necessary
// parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SaveDefault writes the Config to the default path
// (ConfigDir()/config.yaml).
func (c *Config) SaveDefault() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.Save(path)
}
