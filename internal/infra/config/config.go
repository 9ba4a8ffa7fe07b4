// internal/infra/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process-wide environment configuration. It is loaded once
// at boot and injected; nothing re-reads the environment per call.
type Config struct {
	Port string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	// DBPasswordSecret, when set, names a Secret Manager secret that
	// overrides DBPassword (see secret.go).
	DBPasswordSecret string

	// GCP / Firebase
	GCPProjectID       string
	FirestoreProjectID string
	FirebaseProjectID  string
	GCPCreds           string

	// Redis (optional; empty disables the catalog cache)
	RedisAddr string

	// SendGrid (optional; empty disables invitation mail)
	SendGridAPIKey string
	MailFrom       string

	// CORS
	AllowedOrigin string
}

// Load reads the environment into a Config. When APP_ENV=local, .env.local
// is loaded first so local runs don't need exported variables.
func Load() *Config {
	if os.Getenv("APP_ENV") == "local" {
		if err := godotenv.Load(".env.local"); err != nil {
			log.Printf("[config] WARN: .env.local not loaded: %v (relying on process env)", err)
		} else {
			log.Printf("[config] loaded .env.local")
		}
	}

	defaultProject := os.Getenv("GCP_PROJECT_ID")

	cfg := &Config{
		Port: getenvDefault("PORT", "8080"),

		DBHost:           getenvDefault("DB_HOST", "localhost"),
		DBPort:           getenvDefault("DB_PORT", "5432"),
		DBUser:           getenvDefault("DB_USER", "postgres"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           getenvDefault("DB_NAME", "tiendapos"),
		DBPasswordSecret: os.Getenv("DB_PASSWORD_SECRET"),

		GCPProjectID:       defaultProject,
		FirestoreProjectID: getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirebaseProjectID:  getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		GCPCreds:           os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       os.Getenv("MAIL_FROM"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
