package config

import (
	"os"
	"strings"
)

type Config struct {
	Port            string
	CORSOrigin      string
	StripeSecretKey string
	JWTSecret       string
	RedisURL        string
}

func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:5173"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
