package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL        string
	APITimeout        time.Duration
	PollInterval      time.Duration
	SessionDBPath     string
	Language          string
	TranslationFolder string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		APIBaseURL:        getEnv("POSTDESK_API_URL", "http://localhost:8080"),
		APITimeout:        getDurationEnv("POSTDESK_API_TIMEOUT", 10*time.Second),
		PollInterval:      getDurationEnv("POSTDESK_POLL_INTERVAL", 10*time.Second),
		SessionDBPath:     getEnv("POSTDESK_SESSION_DB", defaultSessionDBPath()),
		Language:          getEnv("POSTDESK_LANG", "es"),
		TranslationFolder: getEnv("POSTDESK_TRANSLATIONS", "pkg/translator/translation"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func defaultSessionDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "postdesk-session.db"
	}
	return filepath.Join(home, ".postdesk", "session.db")
}
