package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	USDA          USDAConfig
	OpenFoodFacts OpenFoodFactsConfig
	Database      DatabaseConfig
	Cache         CacheConfig
	Analysis      AnalysisConfig
	Tracking      TrackingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// USDAConfig holds USDA FoodData Central API configuration
type USDAConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// OpenFoodFactsConfig holds OpenFoodFacts API configuration
type OpenFoodFactsConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// CacheConfig holds lookup cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// AnalysisConfig holds the health tier thresholds in grams per 100g
type AnalysisConfig struct {
	LowMaxG      float64 `mapstructure:"low_max_g"`
	ModerateMaxG float64 `mapstructure:"moderate_max_g"`
	HighMaxG     float64 `mapstructure:"high_max_g"`
}

// TrackingConfig holds daily tracking configuration
type TrackingConfig struct {
	DailyLimitG float64 `mapstructure:"daily_limit_g"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Pick up a local .env before viper reads the environment
	_ = godotenv.Load()

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/sugarcheck/")

	// Environment variable settings
	v.SetEnvPrefix("SUGARCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// No default DSN; registering the key lets the env override bind.
	v.SetDefault("database.dsn", "")

	// Nutrition source defaults. DEMO_KEY works for light USDA usage.
	v.SetDefault("usda.api_key", "DEMO_KEY")
	v.SetDefault("usda.base_url", "https://api.nal.usda.gov/fdc")
	v.SetDefault("openfoodfacts.base_url", "https://world.openfoodfacts.org")

	// Cache defaults
	v.SetDefault("cache.ttl", "720h") // 30 days

	// Health tier thresholds (grams of sugar per 100g)
	v.SetDefault("analysis.low_max_g", 5.0)
	v.SetDefault("analysis.moderate_max_g", 15.0)
	v.SetDefault("analysis.high_max_g", 25.0)

	// WHO daily added-sugar recommendation
	v.SetDefault("tracking.daily_limit_g", 25.0)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Database.DSN == "" {
		return fmt.Errorf("database DSN is required (set SUGARCHECK_DATABASE_DSN)")
	}

	if config.USDA.APIKey == "" {
		return fmt.Errorf("USDA API key must not be empty (set SUGARCHECK_USDA_API_KEY)")
	}

	a := config.Analysis
	if a.LowMaxG < 0 || a.LowMaxG >= a.ModerateMaxG || a.ModerateMaxG >= a.HighMaxG {
		return fmt.Errorf("analysis thresholds must satisfy 0 <= low < moderate < high, got %v/%v/%v",
			a.LowMaxG, a.ModerateMaxG, a.HighMaxG)
	}

	if config.Tracking.DailyLimitG <= 0 {
		return fmt.Errorf("tracking daily limit must be positive, got %v", config.Tracking.DailyLimitG)
	}

	return nil
}
