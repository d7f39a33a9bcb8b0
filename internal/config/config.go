// Package config loads user settings from $XDG_CONFIG_HOME/kanban/config.yaml
// with KANBAN_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanban/internal/config/colors"
)

// AppName names the config directory and env prefix
const AppName = "kanban"

// Environment variables read directly (the rest go through viper's KANBAN_ prefix)
const (
	EnvConfigFile = "KANBAN_CONFIG"
	EnvThemeFile  = "KANBAN_THEME_FILE"
)

// Defaults
const (
	DefaultStorageBackend = "json"
	DefaultLogLevel       = "info"
	DefaultBoardTitle     = "My First Board"
)

// ColorScheme is the theme section of the config
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	Storage           StorageConfig `yaml:"storage" mapstructure:"storage"`
	LogLevel          string        `yaml:"log_level" mapstructure:"log_level"`
	DefaultBoardTitle string        `yaml:"default_board_title" mapstructure:"default_board_title"`
	KeyMappings       KeyMappings   `yaml:"key_mappings" mapstructure:"key_mappings"`
	ColorScheme       ColorScheme   `yaml:"theme" mapstructure:"theme"`
}

// StorageConfig selects where boards are persisted
type StorageConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"`
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
	// Watch reloads the TUI when another process rewrites the storage file
	Watch bool `yaml:"watch" mapstructure:"watch"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Storage: StorageConfig{
			Backend: DefaultStorageBackend,
			DataDir: defaultDataDir(),
			Watch:   true,
		},
		LogLevel:          DefaultLogLevel,
		DefaultBoardTitle: DefaultBoardTitle,
		KeyMappings:       DefaultKeyMappings(),
		ColorScheme:       *colors.Default(),
	}
	return cfg
}

// Load loads config from the user's config directory.
// A missing file yields the defaults; a malformed one is an error.
func Load() (*Config, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("storage.backend", def.Storage.Backend)
	v.SetDefault("storage.data_dir", def.Storage.DataDir)
	v.SetDefault("storage.watch", def.Storage.Watch)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("default_board_title", def.DefaultBoardTitle)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath, err := Path(); err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", configPath, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Load theme from KANBAN_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// loadThemeFile merges the theme section of the file named by KANBAN_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file.
// KANBAN_CONFIG wins, then $XDG_CONFIG_HOME, then ~/.config.
func Path() (string, error) {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		return explicit, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", AppName, "config.yaml"), nil
}

// LogDir returns where log files are written
func (c *Config) LogDir() string {
	return filepath.Join(c.Storage.DataDir, "logs")
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q: must be debug, info, warn or error", c.LogLevel))
	}
	if c.Storage.DataDir == "" {
		errs = append(errs, errors.New("storage.data_dir must not be empty"))
	}
	return errors.Join(errs...)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = DefaultStorageBackend
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaultDataDir()
	}
	c.Storage.DataDir = expandHome(c.Storage.DataDir)
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if strings.TrimSpace(c.DefaultBoardTitle) == "" {
		c.DefaultBoardTitle = DefaultBoardTitle
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "."+AppName)
	}
	return filepath.Join(homeDir, "."+AppName)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
