package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string // development / production
	DBDSN       string
	RedisAddr   string // empty disables redis, falls back to in-process stores
	RedisPass   string
	JWTSecret   string
	JWTExpires  time.Duration
	FrontendURL string
	UploadDir   string
	SermonDir   string
	ResourceDir string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	PrayerNotify string // staff address for prayer request notifications
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "5000"),
		AppEnv:      getEnv("APP_ENV", "development"),
		DBDSN:       getEnv("DB_DSN", "root:password@tcp(127.0.0.1:3306)/abundant_life?charset=utf8mb4&parseTime=True"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		RedisPass:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		JWTExpires:  getDuration("JWT_EXPIRES_IN", 72*time.Hour),
		FrontendURL: getEnv("FRONTEND_DEV_URL", "http://localhost:5173"),
		UploadDir:   getEnv("UPLOAD_DIR", "public/uploads"),
		SermonDir:   getEnv("SERMON_DIR", "public/sermons"),
		ResourceDir: getEnv("RESOURCE_DIR", "public/resources"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "Abundant Life <no-reply@abundantlife.org>"),
		PrayerNotify: getEnv("PRAYER_NOTIFY_TO", ""),
	}
}

func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
