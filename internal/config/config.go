package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the web process reads from the environment.
type Config struct {
	Addr        string // HTTP listen address
	APIURL      string // Storefront GraphQL endpoint
	APIToken    string // public storefront access token
	Dev         bool   // reparse templates per request
	ContentPath string // optional announcement YAML
}

// Load reads configuration from the environment, after best-effort .env
// loading. The gateway endpoint and token are required; everything else has
// a default.
func Load() (Config, error) {
	_ = godotenv.Load()

	// Port resolution: prefer STORE_WEB_PORT, then PORT, else 8080.
	port := os.Getenv("STORE_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Addr:        ":" + port,
		APIURL:      os.Getenv("STOREFRONT_API_URL"),
		APIToken:    os.Getenv("STOREFRONT_API_TOKEN"),
		Dev:         os.Getenv("STORE_WEB_DEV") != "" || os.Getenv("DEV") != "",
		ContentPath: os.Getenv("STORE_WEB_CONTENT"),
	}

	if cfg.APIURL == "" {
		return Config{}, fmt.Errorf("STOREFRONT_API_URL is required")
	}
	if cfg.APIToken == "" {
		return Config{}, fmt.Errorf("STOREFRONT_API_TOKEN is required")
	}
	return cfg, nil
}
