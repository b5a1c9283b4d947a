package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	// CacheTTL bounds the staleness of read-only state queries.
	CacheTTL time.Duration
	// GameMaxAge is how long an untouched game survives before cleanup.
	GameMaxAge time.Duration
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "themind"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		CacheTTL:   time.Duration(getEnvInt("CACHE_TTL_SECONDS", 2)) * time.Second,
		GameMaxAge: time.Duration(getEnvInt("GAME_MAX_AGE_HOURS", 24)) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
