package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"recaudit/internal/domain"
)

// Config holds the pipeline settings.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (RECAUDIT_*)
//  2. Configuration file (YAML)
//  3. Default values
type Config struct {
	// Data locates the subjects' recording directories
	Data DataConfig `mapstructure:"data"`

	// Naming configures the epoch-type/camera cycling lists
	Naming NamingConfig `mapstructure:"naming"`

	// Index configures the audit index database
	Index IndexConfig `mapstructure:"index"`
}

// DataConfig locates the on-disk data.
type DataConfig struct {
	// Root is the directory holding one subdirectory per subject
	Root string `mapstructure:"root" validate:"required"`
}

// NamingConfig configures the naming scheme's cycling lists. The epoch-type
// and camera lists are parallel: entry i of each describes the same epoch
// type.
type NamingConfig struct {
	// EpochTypes is the ordered epoch-type pattern cycled through during
	// each day of recording, e.g. ["sleep", "run"]
	EpochTypes []string `mapstructure:"epoch_types" validate:"required,min=1,dive,required"`

	// Cameras names the camera used for each epoch type, e.g. ["0", "1"]
	Cameras []string `mapstructure:"cameras" validate:"required,min=1,dive,required"`

	// Team is the lab team name recorded in session metadata
	Team string `mapstructure:"team"`
}

// IndexConfig configures the audit index.
type IndexConfig struct {
	// Path is the SQLite database file location
	Path string `mapstructure:"path" validate:"required"`
}

// Scheme builds the naming scheme for a subject from the configured lists
func (c *Config) Scheme(subject string) (domain.Scheme, error) {
	return domain.NewScheme(subject, c.Naming.EpochTypes, c.Naming.Cameras)
}

// Load reads the configuration from the given file (empty string uses the
// default location), applies environment overrides and defaults, and
// validates the result.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in defaults for any missing values
func ApplyDefaults(cfg *Config) {
	if cfg.Data.Root == "" {
		cfg.Data.Root = "~/implantData"
	}
	if len(cfg.Naming.EpochTypes) == 0 {
		cfg.Naming.EpochTypes = []string{"sleep", "run"}
	}
	if len(cfg.Naming.Cameras) == 0 {
		cfg.Naming.Cameras = []string{"0", "1"}
	}
	if cfg.Index.Path == "" {
		cfg.Index.Path = filepath.Join(getConfigDir(), "index.db")
	}
}

// setupViper configures environment variables and config file settings
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the RECAUDIT_ prefix and underscores
	// Example: RECAUDIT_DATA_ROOT=/mnt/implantData
	v.SetEnvPrefix("RECAUDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file is acceptable, defaults apply
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// getConfigDir returns the configuration directory path, preferring
// XDG_CONFIG_HOME and falling back to ~/.config
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "recaudit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "recaudit")
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
