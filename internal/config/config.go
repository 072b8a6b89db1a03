package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the console's runtime settings, read from the environment
// with an optional .env file underneath.
type Config struct {
	APIBaseURL string
	Port       string
	Env        string
}

func Load() (*Config, error) {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4200"
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	return &Config{
		APIBaseURL: baseURL,
		Port:       port,
		Env:        env,
	}, nil
}
