package config

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort          string
	PostgresDSN       string
	RedisAddr         string
	RedisPassword     string
	ResendAPIKey      string
	NotifyFrom        string
	NotifyTo          string
	NotifyTimeout     time.Duration
	AdminPasswordHash string
	JWTSecret         string
	SessionTTL        time.Duration
	LoginFailureDelay time.Duration
	LogLevel          string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		PostgresDSN:       getEnv("DATABASE_URL", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		NotifyFrom:        getEnv("NOTIFY_FROM", "Amherst Artisan Market <onboarding@resend.dev>"),
		NotifyTo:          getEnv("NOTIFY_TO", "applications@amherstartisanmarket.com"),
		NotifyTimeout:     getDuration("NOTIFY_TIMEOUT", 5*time.Second),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		SessionTTL:        getDuration("SESSION_TTL", 12*time.Hour),
		LoginFailureDelay: getDuration("LOGIN_FAILURE_DELAY", 750*time.Millisecond),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if cfg.PostgresDSN == "" {
		logrus.Fatal("DATABASE_URL is required")
	}
	if cfg.RedisAddr == "" {
		logrus.Fatal("REDIS_ADDR is required")
	}
	if cfg.AdminPasswordHash == "" {
		logrus.Fatal("ADMIN_PASSWORD_HASH is required")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Fatal("invalid duration in environment")
	}
	return parsed
}
