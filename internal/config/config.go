package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Sessions
	SessionSecret  string
	CookieSecure   bool
	CookieSameSite string
	SessionMaxAge  time.Duration
	TrustProxy     bool

	// JWT (API clients)
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Google sign-in
	GoogleClientID string

	// Admin
	AdminEmails string
	AdminToken  string

	// Uploads
	UploadsDir string
	AssetsDir  string
	BucketName string

	// Server
	Port        string
	CORSOrigins string

	// Seeding and logging
	RunSeeders       bool
	LogRetentionDays int
}

func Load() *Config {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "styleverse"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		SessionSecret:  getEnv("SESSION_SECRET", ""),
		CookieSecure:   parseBool(getEnv("COOKIE_SECURE", "false")),
		CookieSameSite: getEnv("COOKIE_SAMESITE", "Lax"),
		SessionMaxAge:  parseDuration(getEnv("SESSION_MAX_AGE", "24h"), 24*time.Hour),
		TrustProxy:     parseBool(getEnv("TRUST_PROXY", "false")),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),
		AdminToken:  getEnv("ADMIN_TOKEN", ""),

		UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
		AssetsDir:  getEnv("ASSETS_DIR", "assets"),
		BucketName: getEnv("BUCKET_NAME", ""),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		RunSeeders:       parseBool(getEnv("RUN_SEEDERS", "false")),
		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
	}
}

// DSN returns the Postgres connection string. DATABASE_URL wins when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
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

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
