package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".mapq"))
		}

		// Check /etc
		v.AddConfigPath("/etc/mapq/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("mapzen.version", "v1")
	v.SetDefault("mapzen.cache_mode", "HIT")
	v.SetDefault("mapzen.timeout_seconds", 30)

	// Search defaults
	v.SetDefault("search.size", 10)
	v.SetDefault("search.concurrency", 5)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Mapzen.APIKey == "" || cfg.Mapzen.APIKey == "your-api-key-here" {
		return fmt.Errorf("mapzen.api_key must be set to a valid API key")
	}

	if cfg.Mapzen.CacheMode != "HIT" && cfg.Mapzen.CacheMode != "MISS" {
		return fmt.Errorf("invalid mapzen.cache_mode: %s (must be 'HIT' or 'MISS')", cfg.Mapzen.CacheMode)
	}

	if cfg.Mapzen.TimeoutSeconds <= 0 {
		return fmt.Errorf("mapzen.timeout_seconds must be positive")
	}

	if cfg.Search.Concurrency <= 0 {
		return fmt.Errorf("search.concurrency must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
