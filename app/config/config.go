package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	Port          string
	SessionSecret string
}

var AppConfig *Config

// Init loads configuration from .env and environment variables.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		APIBaseURL:    getEnv("WORKSYNC_API_BASE", "https://work-sync-gbf0h9d5amcxhwcr.canadacentral-01.azurewebsites.net"),
		Port:          getEnv("PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "work-sync-admin-secret-key"),
	}
	log.Printf("Configuration loaded, backend API at %s", AppConfig.APIBaseURL)
}

func Get() *Config {
	return AppConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
