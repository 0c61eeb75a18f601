// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// PostgreSQL
	PostgresDSN string

	// Import
	DutyLimitMinutes int // rolling-window duty limit used for burn-rate projection
	ImportDir        string
	ImportInterval   time.Duration

	// Airport reference data
	AirportsURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8090"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		PostgresDSN: getEnv("PILOTLOG_POSTGRES_DSN", "postgres://localhost:5432/pilotlog?sslmode=disable"),

		// FAR 117 figure: 100 block hours in any 672 consecutive hours.
		DutyLimitMinutes: getEnvAsInt("PILOTLOG_DUTY_LIMIT_MINUTES", 6000),
		ImportDir:        getEnv("PILOTLOG_IMPORT_DIR", ""),
		ImportInterval:   time.Duration(getEnvAsInt("PILOTLOG_IMPORT_INTERVAL", 60)) * time.Second,

		AirportsURL: getEnv("PILOTLOG_AIRPORTS_URL", "https://davidmegginson.github.io/ourairports-data/airports.csv"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
