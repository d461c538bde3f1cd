package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Environment ("development" or "production")
	Env string

	// HTTP server
	Port string

	// Currency rate lookup
	RatesBaseURL string
	RatesTimeout time.Duration

	// Export defaults
	ExportFile string
}

// Load loads configuration from environment variables, falling back to an
// optional .env file.
func Load() (*Config, error) {
	// Load .env file if present; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Env:          getEnv("ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		RatesBaseURL: getEnv("RATES_BASE_URL", "https://api.exchangerate-api.com/v4/latest"),
		ExportFile:   getEnv("EXPORT_FILE", "financial_data.csv"),
	}

	timeoutStr := getEnv("RATES_TIMEOUT", "5s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RATES_TIMEOUT %q: %w", timeoutStr, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("RATES_TIMEOUT must be positive, got %v", timeout)
	}
	cfg.RatesTimeout = timeout

	return cfg, nil
}
