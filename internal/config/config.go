package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration. When no database is configured the service
	// runs against the built-in seed dataset and every write is a local
	// no-op that succeeds.
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Gemini configuration for pipeline insights
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Live feed simulation parameters (used when no push channel exists)
	LiveFeedIntervalSec  int     `mapstructure:"LIVE_FEED_INTERVAL_SEC"`
	LiveFeedTickChance   float64 `mapstructure:"LIVE_FEED_TICK_CHANCE"`
	LiveFeedJitterPoints int     `mapstructure:"LIVE_FEED_JITTER_POINTS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL from parts when only parts are provided
	if config.DatabaseURL == "" && config.DatabaseName != "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults; DB_NAME intentionally has no default so that an
	// unconfigured deployment falls back to the seed dataset
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Gemini defaults
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")

	// Live feed simulation defaults, matching the dashboard's demo drift
	viper.SetDefault("LIVE_FEED_INTERVAL_SEC", 3)
	viper.SetDefault("LIVE_FEED_TICK_CHANCE", 0.3)
	viper.SetDefault("LIVE_FEED_JITTER_POINTS", 5)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.LiveFeedIntervalSec <= 0 {
		return fmt.Errorf("LIVE_FEED_INTERVAL_SEC must be positive")
	}
	if config.LiveFeedTickChance < 0 || config.LiveFeedTickChance > 1 {
		return fmt.Errorf("LIVE_FEED_TICK_CHANCE must be within [0,1]")
	}
	if config.LiveFeedJitterPoints <= 0 {
		return fmt.Errorf("LIVE_FEED_JITTER_POINTS must be positive")
	}
	return nil
}

// DatabaseConfigured reports whether a persistence backend was configured.
// Without one every read serves the seed dataset and writes are no-ops.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != ""
}

// InsightConfigured reports whether the Gemini insight generator can run
func (c *Config) InsightConfigured() bool {
	return c.GeminiAPIKey != ""
}

// LiveFeedInterval returns the simulation tick interval
func (c *Config) LiveFeedInterval() time.Duration {
	return time.Duration(c.LiveFeedIntervalSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
