package config

// Config represents the complete configuration structure
type Config struct {
	Mapzen  MapzenConfig  `mapstructure:"mapzen"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MapzenConfig holds API connection details for the three services
type MapzenConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Version        string `mapstructure:"version"`
	SearchHost     string `mapstructure:"search_host"`
	RouteHost      string `mapstructure:"route_host"`
	PostalHost     string `mapstructure:"postal_host"`
	CacheMode      string `mapstructure:"cache_mode"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SearchConfig contains defaults applied to search and autocomplete commands
type SearchConfig struct {
	Size        int      `mapstructure:"size"`
	Country     string   `mapstructure:"country"`
	Sources     []string `mapstructure:"sources"`
	Layers      []string `mapstructure:"layers"`
	Concurrency int      `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
