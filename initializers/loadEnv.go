package initializers

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Env              string
	DBUser           string
	DBPassword       string
	DBHost           string
	DBName           string
	SessionSecret    string
	SessionStore     string
	SessionMaxAge    time.Duration
	SessionCleanup   time.Duration
	KeepCartOnLogout bool
	CorsOrigins      []string
	SeedFile         string
	S3Bucket         string

	// Outgoing mail; disabled unless FromEmail and SMTPAddress are set.
	FromEmail         string
	FromEmailPassword string
	SMTPHost          string
	SMTPAddress       string
	StoreURL          string
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c Config) MailEnabled() bool {
	return c.FromEmail != "" && c.SMTPAddress != ""
}

// LoadEnv reads .env when present; variables already set in the environment
// take precedence.
func LoadEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "production"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:        getEnv("DB_NAME", "storefront"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionStore:  getEnv("SESSION_STORE", "cookie"),
		SeedFile:      os.Getenv("SEED_FILE"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CorsOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),

		FromEmail:         os.Getenv("FROM_EMAIL"),
		FromEmailPassword: os.Getenv("FROM_EMAIL_PASSWORD"),
		SMTPHost:          os.Getenv("FROM_EMAIL_SMTP"),
		SMTPAddress:       os.Getenv("SMTP_ADDRESS"),
		StoreURL:          os.Getenv("STORE_URL"),
	}

	maxAge, err := time.ParseDuration(getEnv("SESSION_MAX_AGE", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_MAX_AGE: %w", err)
	}
	cfg.SessionMaxAge = maxAge

	cleanup, err := time.ParseDuration(getEnv("SESSION_CLEANUP_INTERVAL", "1h"))
	if err != nil || cleanup <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_CLEANUP_INTERVAL %q", os.Getenv("SESSION_CLEANUP_INTERVAL"))
	}
	cfg.SessionCleanup = cleanup

	if v := os.Getenv("KEEP_CART_ON_LOGOUT"); v != "" {
		keep, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid KEEP_CART_ON_LOGOUT: %w", err)
		}
		cfg.KeepCartOnLogout = keep
	}

	switch cfg.SessionStore {
	case "cookie":
		if cfg.SessionSecret == "" {
			return Config{}, fmt.Errorf("SESSION_SECRET must be set for the cookie session store")
		}
	case "database":
	default:
		return Config{}, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
