package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected default port 8080, got %q", cfg.Port)
		}
		if cfg.RatesTimeout != 5*time.Second {
			t.Errorf("expected default rates timeout 5s, got %v", cfg.RatesTimeout)
		}
		if cfg.ExportFile != "financial_data.csv" {
			t.Errorf("expected default export file, got %q", cfg.ExportFile)
		}
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("RATES_TIMEOUT", "2s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("expected port 9090, got %q", cfg.Port)
		}
		if cfg.RatesTimeout != 2*time.Second {
			t.Errorf("expected rates timeout 2s, got %v", cfg.RatesTimeout)
		}
	})

	t.Run("rejects malformed or non-positive timeout", func(t *testing.T) {
		for _, value := range []string{"soon", "-1s", "0"} {
			t.Setenv("RATES_TIMEOUT", value)
			if _, err := Load(); err == nil {
				t.Errorf("expected RATES_TIMEOUT=%q to be rejected", value)
			}
		}
	})
}
