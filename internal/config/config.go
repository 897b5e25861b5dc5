package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the web frontend.
type Config struct {
	ListenAddr     string
	BackendBaseURL string
	RequestTimeout time.Duration
	RazorpayKeyID  string
	GinMode        string
	AllowedOrigins []string
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Config.Load - No .env file loaded: %v", err)
	}

	port := getEnv("PORT", "8082")

	return &Config{
		ListenAddr:     ":" + port,
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8080"),
		RequestTimeout: time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		RazorpayKeyID:  getEnv("RAZORPAY_KEY_ID", ""),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "http://localhost:8082")},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
