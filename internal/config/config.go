package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Search  SearchConfig
	Logging LoggingConfig
}

// SearchConfig represents the search and landing-page configuration
type SearchConfig struct {
	PopularLimit int    // number of popular-route cards on the landing page
	Currency     string // label rendered next to prices
}

// LoggingConfig represents the logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables. Every value has a
// default, so loading never fails.
func Load(envPath string) *Config {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if envPath == "" {
		envPath = ".env"
	}
	_ = godotenv.Load(envPath)

	return &Config{
		Search: SearchConfig{
			PopularLimit: getEnvAsInt("POPULAR_ROUTES_LIMIT", 4),
			Currency:     getEnv("CURRENCY_LABEL", "₽"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
