package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string

	JWTSecret   string
	TokenExpiry time.Duration

	Port           string
	GinMode        string
	AllowedOrigins string

	// TaskUpdateAdminOnly restricts the generic task field-update endpoint to
	// admin principals. The historical contract leaves it open to any
	// authenticated caller, so the default is false.
	TaskUpdateAdminOnly bool

	StatsCacheTTL time.Duration
}

func Load() *Config {
	// Missing .env is fine; variables may come from the process environment.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "taskportal"),
		DBPassword: getEnv("DB_PASSWORD", "taskportal"),
		DBName:     getEnv("DB_NAME", "task_portal"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:   getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenExpiry: parseDuration(getEnv("TOKEN_EXPIRY", "24h"), 24*time.Hour),

		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),

		TaskUpdateAdminOnly: getEnv("TASK_UPDATE_ADMIN_ONLY", "false") == "true",

		StatsCacheTTL: parseDuration(getEnv("STATS_CACHE_TTL", "5s"), 5*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
