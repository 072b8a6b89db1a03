package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8080/api")
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Port != "4200" {
		t.Errorf("Port = %q, want default 4200", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want default development", cfg.Env)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.internal/api")
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9000" || cfg.Env != "production" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when API_BASE_URL is missing")
	}
}
