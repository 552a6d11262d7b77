package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Addr          string
	DBPath        string
	SessionSecret string
	TokenSecret   string
	AppBaseURL    string
}

// New loads configuration from environment variables. A .env file is
// loaded first if present.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          os.Getenv("PARLEY_ADDR"),
		DBPath:        os.Getenv("PARLEY_DB_PATH"),
		SessionSecret: os.Getenv("PARLEY_SESSION_SECRET"),
		TokenSecret:   os.Getenv("PARLEY_TOKEN_SECRET"),
		AppBaseURL:    os.Getenv("PARLEY_BASE_URL"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "parley.db"
	}
	if cfg.AppBaseURL == "" {
		cfg.AppBaseURL = "http://localhost:8080"
	}

	if cfg.SessionSecret == "" || cfg.TokenSecret == "" {
		return nil, fmt.Errorf("required environment variables PARLEY_SESSION_SECRET and PARLEY_TOKEN_SECRET are not set")
	}

	return cfg, nil
}
