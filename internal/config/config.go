// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr string

	DatabaseURL string

	JWTSecret []byte
	TokenTTL  time.Duration

	GeminiAPIKey string
	GeminiModel  string

	UploadDir         string
	GenerationTimeout time.Duration
}

// Load reads .env (if present) and assembles configuration from the
// environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := &Config{
		Addr:              getenv("ADDR", ":8080"),
		JWTSecret:         []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:          24 * time.Hour,
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		UploadDir:         getenv("UPLOAD_DIR", "uploads/campaigns"),
		GenerationTimeout: 30 * time.Second,
	}

	if v := os.Getenv("GENERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid GENERATION_TIMEOUT %q: %v", v, err)
		}
		cfg.GenerationTimeout = d
	}

	cfg.DatabaseURL = fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
