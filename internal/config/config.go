package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	"gopkg.in/yaml.v3"
)

const appName = "todo"

// Config represents the application configuration
type Config struct {
	DatabasePath string      `yaml:"database_path,omitempty" toml:"database_path"`
	LogFile      string      `yaml:"log_file,omitempty" toml:"log_file"`
	LogLevel     string      `yaml:"log_level,omitempty" toml:"log_level"`
	Watch        *bool       `yaml:"watch,omitempty" toml:"watch"`
	DefaultIcon  string      `yaml:"default_icon,omitempty" toml:"default_icon"`
	KeyMappings  KeyMappings `yaml:"key_mappings" toml:"key_mappings"`
	ColorScheme  ColorScheme `yaml:"theme" toml:"theme"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TODO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TODO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("ignoring theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config if no file exists. A config.toml takes precedence
// over config.yaml.
func Load() (*Config, error) {
	var config Config

	configDir, err := getConfigDir()
	if err == nil {
		if err := readConfigFile(configDir, &config); err != nil {
			return nil, err
		}
	}

	loadThemeFile(&config)

	if path := os.Getenv("TODO_DB_PATH"); path != "" {
		config.DatabasePath = path
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func readConfigFile(dir string, config *Config) error {
	tomlPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		if _, err := toml.DecodeFile(tomlPath, config); err != nil {
			return fmt.Errorf("parsing %s: %w", tomlPath, err)
		}
		return nil
	}

	yamlPath := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(yamlPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parsing %s: %w", yamlPath, err)
	}
	return nil
}

// Save saves the config to the user's config directory as YAML
func (c *Config) Save() error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.yaml"), data, 0o644)
}

// Validate checks values that have a fixed set of choices
func (c *Config) Validate() error {
	if _, err := models.ParseIcon(c.DefaultIcon); err != nil {
		return fmt.Errorf("default_icon: %w", err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Icon returns the icon new items start with
func (c *Config) Icon() models.Icon {
	icon, err := models.ParseIcon(c.DefaultIcon)
	if err != nil {
		return models.DefaultIcon
	}
	return icon
}

// Level returns the configured log level
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// WatchEnabled reports whether the database file should be watched for
// writes from other processes
func (c *Config) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}

// getConfigDir returns the directory holding the config file
func getConfigDir() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

// dataDir is where the database and logs live by default
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(homeDir, "."+appName)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		if path, err := database.DefaultPath(); err == nil {
			c.DatabasePath = path
		} else {
			c.DatabasePath = filepath.Join(dataDir(), "todos.db")
		}
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(dataDir(), "logs", "todo.log")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultIcon == "" {
		c.DefaultIcon = models.DefaultIcon.String()
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
