// Package config loads service configuration from the environment.
package config

import (
	"os"

	// Load .env files before anything reads the environment.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds everything the server reads from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// ContentAPIBaseURL is the remote content service. Empty means the
	// in-memory mock content service is used instead.
	ContentAPIBaseURL string
	// DatabasePath is the sqlite file backing posts, contact submissions
	// and visitor metrics.
	DatabasePath string
	// GeminiAPIKey authenticates chat completion calls. Empty disables chat.
	GeminiAPIKey string

	// SMTP settings for contact notification email.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string

	// Admin credentials for the submissions dashboard.
	AdminUsername string
	AdminPassword string

	LogLevel string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:              getenv("PORT", "8080"),
		ContentAPIBaseURL: os.Getenv("CONTENT_API_BASE_URL"),
		DatabasePath:      getenv("DATABASE_PATH", "data/portfolio.db"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		SMTPHost:          getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getenv("SMTP_PORT", "587"),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		ToEmail:           os.Getenv("TO_EMAIL"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
	}
}

// GNewsAPIKey returns the tech news credential. Two variable names are
// accepted; the first match wins.
func GNewsAPIKey() string {
	for _, name := range []string{"VITE_GNEWS_API_KEY", "GNEWS_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
