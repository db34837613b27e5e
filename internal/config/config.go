package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // CLAIM_TIMEZONE must resolve in minimal containers

	apperrors "cleaning-ops-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Redis backs the cached list counts; empty disables caching
	RedisURL             string `mapstructure:"REDIS_URL"`
	CountsCacheTTLSecond int    `mapstructure:"COUNTS_CACHE_TTL_SEC"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Claim availability window
	ClaimLookbackDays   int    `mapstructure:"CLAIM_LOOKBACK_DAYS"`
	ClaimHorizonDays    int    `mapstructure:"CLAIM_HORIZON_DAYS"`
	ClaimAllowPastDates bool   `mapstructure:"CLAIM_ALLOW_PAST_DATES"`
	ClaimTimezone       string `mapstructure:"CLAIM_TIMEZONE"`

	// Rate limit applied to claim/start/complete/decline, ulule/limiter format ("60-M")
	ClaimRateLimit string `mapstructure:"CLAIM_RATE_LIMIT"`
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

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "cleaning_ops")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Cache defaults
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("COUNTS_CACHE_TTL_SEC", 60)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Availability window defaults
	viper.SetDefault("CLAIM_LOOKBACK_DAYS", 7)
	viper.SetDefault("CLAIM_HORIZON_DAYS", 30)
	viper.SetDefault("CLAIM_ALLOW_PAST_DATES", false)
	viper.SetDefault("CLAIM_TIMEZONE", "UTC")

	viper.SetDefault("CLAIM_RATE_LIMIT", "60-M")
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
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return apperrors.NewConfigurationError("JWT_SECRET must be set in production")
		}
		if config.ClaimAllowPastDates {
			return apperrors.NewConfigurationError("CLAIM_ALLOW_PAST_DATES must not be enabled in production")
		}
	}

	if config.DatabaseName == "" {
		return apperrors.NewConfigurationError("database name is required")
	}

	if config.ClaimLookbackDays < 0 || config.ClaimHorizonDays < 0 {
		return apperrors.NewConfigurationError("claim window days must not be negative")
	}

	// Redis keys set with a zero TTL never expire
	if config.CountsCacheTTLSecond <= 0 {
		return apperrors.NewConfigurationError("COUNTS_CACHE_TTL_SEC must be positive")
	}

	if _, err := time.LoadLocation(config.ClaimTimezone); err != nil {
		return apperrors.NewConfigurationError(fmt.Sprintf("invalid CLAIM_TIMEZONE %q: %v", config.ClaimTimezone, err))
	}

	return nil
}

// Location returns the timezone used to compute civil dates for the claim window
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ClaimTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CountsCacheTTL returns the lifetime of cached list counts
func (c *Config) CountsCacheTTL() time.Duration {
	return time.Duration(c.CountsCacheTTLSecond) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
