// Package config loads themekit configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/serialize"
	"github.com/opencode-ai/themekit/internal/wcag"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. THEMEKIT_LOGGING_LEVEL.
const EnvPrefix = "THEMEKIT"

// FileName is the config file looked up when no explicit path is given.
const FileName = "config.yaml"

// Config is the complete configuration.
type Config struct {
	Themes   ThemesConfig   `mapstructure:"themes"`
	Contrast ContrastConfig `mapstructure:"contrast"`
	Export   ExportConfig   `mapstructure:"export"`
	Logging  LoggingConfig  `mapstructure:"logging"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// ThemesConfig controls where descriptor files are found.
type ThemesConfig struct {
	// Dirs are searched after the project directory and before the user
	// config directory.
	Dirs []string `mapstructure:"dirs"`
	// Default is used when a command is given no theme name.
	Default string `mapstructure:"default"`
}

// ContrastConfig sets the accessibility level checked by default.
type ContrastConfig struct {
	Level string `mapstructure:"level"`
}

// ExportConfig controls serialization.
type ExportConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Themes: ThemesConfig{
			Dirs:    []string{},
			Default: "default",
		},
		Contrast: ContrastConfig{Level: string(wcag.LevelAA)},
		Export:   ExportConfig{Prefix: serialize.DefaultPrefix},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/themekit, falling back to
// ~/.config/themekit.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "themekit")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".config", "themekit")
	}
	return filepath.Join(home, ".config", "themekit")
}

// Load reads configuration. An explicit path must exist; otherwise
// ./.themekit/config.yaml and then the user config directory are tried and
// a missing file is not an error. Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("yaml")
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(".themekit")
		v.AddConfigPath(DefaultConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("themes.dirs", cfg.Themes.Dirs)
	v.SetDefault("themes.default", cfg.Themes.Default)
	v.SetDefault("contrast.level", cfg.Contrast.Level)
	v.SetDefault("export.prefix", cfg.Export.Prefix)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Themes.Default) == "" {
		return fmt.Errorf("themes.default is required")
	}
	if _, err := wcag.ParseLevel(c.Contrast.Level); err != nil {
		return fmt.Errorf("contrast.level: %w", err)
	}
	if !serialize.ValidPrefix(c.Export.Prefix) {
		return fmt.Errorf("export.prefix %q must be lowercase words separated by hyphens", c.Export.Prefix)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format %q must be %s or %s", c.Logging.Format, logging.FormatConsole, logging.FormatJSON)
	}
	return nil
}

// ContrastLevel returns the parsed contrast level.
func (c *Config) ContrastLevel() wcag.Level {
	level, err := wcag.ParseLevel(c.Contrast.Level)
	if err != nil {
		return wcag.LevelAA
	}
	return level
}

// Template is written by `themekit init`.
const Template = `# themekit configuration

themes:
  # Extra directories searched for theme descriptor files (.yaml, .yml, .json).
  # ./.themekit/themes always comes first and ~/.config/themekit/themes last.
  dirs: []
  # Theme used when a command is given no name.
  default: default

contrast:
  # WCAG level checked by "themekit contrast": AA or AAA.
  level: AA

export:
  # Variable names are --<prefix>-color-<role>-<level>.
  prefix: theme

logging:
  # trace, debug, info, warn, error
  level: warn
  # console or json
  format: console
`
