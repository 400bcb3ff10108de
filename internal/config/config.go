package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sessions
	SessionSecret  string
	SessionExpiry  time.Duration
	RememberExpiry time.Duration

	// Server
	Port   string
	AppEnv string

	// Views
	TemplatesPath string
	StaticPath    string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "patitas_felices"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionSecret:  getEnv("SESSION_SECRET", ""),
		SessionExpiry:  parseDuration(getEnv("SESSION_EXPIRY", "12h"), 12*time.Hour),
		RememberExpiry: parseDuration(getEnv("REMEMBER_EXPIRY", "720h"), 720*time.Hour),

		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		TemplatesPath: getEnv("TEMPLATES_PATH", "./web/templates"),
		StaticPath:    getEnv("STATIC_PATH", "./web/static"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
