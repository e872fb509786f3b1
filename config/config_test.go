package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Mapzen: MapzenConfig{
			APIKey:         "valid-api-key",
			Version:        "v1",
			CacheMode:      "HIT",
			TimeoutSeconds: 30,
		},
		Search: SearchConfig{
			Size:        10,
			Concurrency: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{
			name:    "Valid API key",
			apiKey:  "mapzen-xxxxxx",
			wantErr: false,
		},
		{
			name:    "Missing API key",
			apiKey:  "",
			wantErr: true,
		},
		{
			name:    "Placeholder API key",
			apiKey:  "your-api-key-here",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Mapzen.APIKey = tt.apiKey

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCacheMode(t *testing.T) {
	tests := []struct {
		name      string
		cacheMode string
		wantErr   bool
	}{
		{
			name:      "Valid cache mode - HIT",
			cacheMode: "HIT",
			wantErr:   false,
		},
		{
			name:      "Valid cache mode - MISS",
			cacheMode: "MISS",
			wantErr:   false,
		},
		{
			name:      "Lowercase cache mode",
			cacheMode: "hit",
			wantErr:   true,
		},
		{
			name:      "Invalid cache mode",
			cacheMode: "ALWAYS",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Mapzen.CacheMode = tt.cacheMode

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && tt.wantErr && tt.cacheMode == "ALWAYS" {
				want := "invalid mapzen.cache_mode: ALWAYS (must be 'HIT' or 'MISS')"
				if err.Error() != want {
					t.Errorf("validate() error message = %v, want %v", err.Error(), want)
				}
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"Valid debug console", "debug", "console", false},
		{"Valid info json", "info", "json", false},
		{"Invalid level", "trace", "console", true},
		{"Invalid format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
