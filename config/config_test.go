package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("ARBVAULT_SERVER_PORT")
		os.Unsetenv("ARBVAULT_SERVER_ENVIRONMENT")
		os.Unsetenv("ARBVAULT_BACKEND_BASE_URL")
		os.Unsetenv("ARBVAULT_BACKEND_TOKEN")
		os.Unsetenv("ARBVAULT_CACHE_TTL")
		os.Unsetenv("ARBVAULT_DATABASE_PATH")
		os.Unsetenv("ARBVAULT_ANALYSIS_AUTOSOURCE_LIMIT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required backend URL
		os.Setenv("ARBVAULT_BACKEND_BASE_URL", "https://analysis.example.com")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
		if cfg.Database.Path != "./data/arbitragevault.db" {
			t.Errorf("Database.Path = %s, want ./data/arbitragevault.db", cfg.Database.Path)
		}
		if cfg.Analysis.AutosourceLimit != 20 {
			t.Errorf("Analysis.AutosourceLimit = %d, want 20", cfg.Analysis.AutosourceLimit)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("ARBVAULT_SERVER_PORT", "9090")
		os.Setenv("ARBVAULT_SERVER_ENVIRONMENT", "production")
		os.Setenv("ARBVAULT_BACKEND_BASE_URL", "https://staging.analysis.example.com")
		os.Setenv("ARBVAULT_BACKEND_TOKEN", "svc-token")
		os.Setenv("ARBVAULT_CACHE_TTL", "10m")
		os.Setenv("ARBVAULT_DATABASE_PATH", "/var/lib/arbitragevault/data.db")
		os.Setenv("ARBVAULT_ANALYSIS_AUTOSOURCE_LIMIT", "50")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Backend.BaseURL != "https://staging.analysis.example.com" {
			t.Errorf("Backend.BaseURL = %s", cfg.Backend.BaseURL)
		}
		if cfg.Backend.Token != "svc-token" {
			t.Errorf("Backend.Token = %s, want svc-token", cfg.Backend.Token)
		}
		if cfg.Cache.TTL != 10*time.Minute {
			t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
		}
		if cfg.Database.Path != "/var/lib/arbitragevault/data.db" {
			t.Errorf("Database.Path = %s", cfg.Database.Path)
		}
		if cfg.Analysis.AutosourceLimit != 50 {
			t.Errorf("Analysis.AutosourceLimit = %d, want 50", cfg.Analysis.AutosourceLimit)
		}
	})

	t.Run("fails without backend base URL", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want error for missing backend base URL")
		}
	})
}
