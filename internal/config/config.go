package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/adipramono/ramalan-cuaca/internal/forecast/providers"
)

type AppConfig struct {
	// AreaCode is the BMKG adm4 code forecasts are fetched for.
	AreaCode string

	// BaseURL points at the BMKG API; override for tests and mirrors.
	BaseURL string

	// HTTPTimeout bounds the single outbound fetch.
	HTTPTimeout time.Duration

	// Policy names the message layout: "siang-malam" or "hari-ini".
	Policy string

	LogLevel string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	// Default area is Bukit Tunggal, Palangkaraya.
	cfg.AreaCode = getenvDefault("AREA_CODE", "62.71.03.1003")
	cfg.BaseURL = getenvDefault("BMKG_BASE_URL", providers.DefaultBaseURL)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Policy = getenvDefault("FORECAST_POLICY", "siang-malam")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
