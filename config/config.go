package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	// Public base URL of this service, used to derive the mobile OAuth
	// callback registered with Google.
	APP_BASE_URL string

	GOOGLE_CLIENT_ID     string
	GOOGLE_CLIENT_SECRET string

	MIDTRANS_SERVER_KEY    string
	MIDTRANS_CLIENT_KEY    string
	MIDTRANS_IS_PRODUCTION bool
)

// LoadEnv reads the environment exactly once at startup and fails fast on
// anything missing. Handlers never touch os.Getenv themselves.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	APP_BASE_URL = getEnv("APP_BASE_URL", "http://localhost:"+PORT)

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")

	MIDTRANS_SERVER_KEY = mustEnv("MIDTRANS_SERVER_KEY")
	MIDTRANS_CLIENT_KEY = mustEnv("MIDTRANS_CLIENT_KEY")
	MIDTRANS_IS_PRODUCTION = getEnv("MIDTRANS_IS_PRODUCTION", "false") == "true"
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
