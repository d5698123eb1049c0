package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"habitrack/internal/db"
)

// Config holds the optional user configuration read from
// ~/.habitrack/config.yaml. Every field has a sensible default; the file
// does not need to exist.
type Config struct {
	DBPath        string `mapstructure:"db_path"`
	DefaultFilter string `mapstructure:"default_filter"`
	RemindSpec    string `mapstructure:"remind_spec"` // cron spec for the reminder daemon
}

// ConfigPath returns the location of the config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".habitrack", "config.yaml"), nil
}

// Load reads the configuration, falling back to defaults when the file is
// missing.
func Load() (*Config, error) {
	cfg := &Config{}

	configPath, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			v := viper.New()
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
			if err := v.Unmarshal(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if cfg.DBPath == "" {
		path, err := db.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		cfg.DBPath = path
	}
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = "all"
	}
	if cfg.RemindSpec == "" {
		cfg.RemindSpec = "0 9 * * *" // 09:00 every day
	}

	return cfg, nil
}
