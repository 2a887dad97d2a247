package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string

	MEDUSA_BACKEND_URL     string
	MEDUSA_PUBLISHABLE_KEY string
	DEFAULT_REGION         string
	GEO_COUNTRY_HEADER     string
	REGION_CACHE_TTL       time.Duration

	GRAPHQL_URL   string
	CMS_CACHE_TTL time.Duration

	REDIS_ADDR     string
	REDIS_PASSWORD string
	REDIS_DB       int

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string
	APP_URL               string

	LOG_LEVEL string
)

// LoadEnv reads .env (when present) and the process environment.
// It returns an error naming every missing required variable.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	var missing []string
	mustEnv := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, key)
			return ""
		}
		return strings.TrimSpace(v)
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	MEDUSA_BACKEND_URL = strings.TrimRight(mustEnv("MEDUSA_BACKEND_URL"), "/")
	MEDUSA_PUBLISHABLE_KEY = mustEnv("MEDUSA_PUBLISHABLE_KEY")
	DEFAULT_REGION = strings.ToLower(getEnv("DEFAULT_REGION", "de"))
	GEO_COUNTRY_HEADER = getEnv("GEO_COUNTRY_HEADER", "X-Vercel-IP-Country")
	REGION_CACHE_TTL = getDuration("REGION_CACHE_TTL", time.Hour)

	GRAPHQL_URL = mustEnv("GRAPHQL_URL")
	CMS_CACHE_TTL = getDuration("CMS_CACHE_TTL", time.Hour)

	REDIS_ADDR = getEnv("REDIS_ADDR", "")
	REDIS_PASSWORD = getEnv("REDIS_PASSWORD", "")
	REDIS_DB = getInt("REDIS_DB", 0)

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")
	APP_URL = strings.TrimRight(getEnv("APP_URL", "http://localhost:3000"), "/")

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}
