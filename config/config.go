package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	PORT        string
	CORS_ORIGIN string
	JWT_SECRET  string
	LOG_LEVEL   string

	STORAGE_DRIVER      string
	STORAGE_PATH        string
	DB_URL              string
	REDIS_URL           string
	STORAGE_QUOTA_BYTES int

	TRIAL_DAYS      int
	PUBLIC_BASE_URL string
	PUBLISH_DELAY   time.Duration

	GEMINI_API_KEY string
	GEMINI_MODEL   string

	STRIPE_SECRET_KEY string
)

const devJWTSecret = "indi-dev-secret"

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")

	STORAGE_DRIVER = getEnv("STORAGE_DRIVER", "sqlite")
	if STORAGE_DRIVER == "memory" {
		// throwaway runs only: nothing outlives the process
		JWT_SECRET = getEnv("JWT_SECRET", devJWTSecret)
	} else {
		JWT_SECRET = mustEnv("JWT_SECRET")
	}
	STORAGE_PATH = getEnv("STORAGE_PATH", "./data/indi.db")
	DB_URL = getEnv("DB_URL", "")
	REDIS_URL = getEnv("REDIS_URL", "")
	switch STORAGE_DRIVER {
	case "postgres":
		DB_URL = mustEnv("DB_URL")
	case "redis":
		REDIS_URL = mustEnv("REDIS_URL")
	}
	// roughly what browsers give a single origin
	STORAGE_QUOTA_BYTES = getEnvInt("STORAGE_QUOTA_BYTES", 5*1024*1024)

	TRIAL_DAYS = getEnvInt("TRIAL_DAYS", 14)
	PUBLIC_BASE_URL = getEnv("PUBLIC_BASE_URL", "https://indi.app")
	PUBLISH_DELAY = getEnvDuration("PUBLISH_DELAY", 1500*time.Millisecond)

	GEMINI_API_KEY = getEnv("GEMINI_API_KEY", "")
	if GEMINI_API_KEY == "" {
		// API_KEY is the name the web build used
		GEMINI_API_KEY = getEnv("API_KEY", "")
	}
	GEMINI_MODEL = getEnv("GEMINI_MODEL", "gemini-2.5-flash")

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")

	ConfigureLogging()
}

// ConfigureLogging applies LOG_LEVEL to the standard logrus logger.
func ConfigureLogging() {
	level, err := log.ParseLevel(LOG_LEVEL)
	if err != nil {
		log.WithField("LOG_LEVEL", LOG_LEVEL).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

// TrialPeriod converts TRIAL_DAYS to a duration.
func TrialPeriod() time.Duration {
	return time.Duration(TRIAL_DAYS) * 24 * time.Hour
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

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.WithField(key, value).Warn("Invalid integer, using default")
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.WithField(key, value).Warn("Invalid duration, using default")
		return fallback
	}
	return d
}
