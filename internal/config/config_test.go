package config

import (
	"testing"
	"time"

	"github.com/adipramono/ramalan-cuaca/internal/forecast/providers"
)

// TestLoadDefaults verifies every knob falls back to its documented default.
func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"AREA_CODE", "BMKG_BASE_URL", "HTTP_TIMEOUT", "FORECAST_POLICY", "LOG_LEVEL", "PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AreaCode != "62.71.03.1003" {
		t.Errorf("expected default area code, got %q", cfg.AreaCode)
	}
	if cfg.BaseURL != providers.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.Policy != "siang-malam" {
		t.Errorf("expected default policy, got %q", cfg.Policy)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
}

// TestLoadOverrides verifies environment values win over defaults.
func TestLoadOverrides(t *testing.T) {
	t.Setenv("AREA_CODE", "31.71.01.1001")
	t.Setenv("BMKG_BASE_URL", "http://localhost:9999")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("FORECAST_POLICY", "hari-ini")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AreaCode != "31.71.01.1001" {
		t.Errorf("expected overridden area code, got %q", cfg.AreaCode)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("expected overridden base URL, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.Policy != "hari-ini" {
		t.Errorf("expected overridden policy, got %q", cfg.Policy)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected overridden port, got %q", cfg.Port)
	}
}

// TestLoadInvalidTimeout verifies a malformed duration is a load error.
func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid HTTP_TIMEOUT, got nil")
	}
}
