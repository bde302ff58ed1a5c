package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret          string
	SessionTTL         time.Duration
	CookieSecure       bool
	AdminSecretKey     string
	CORSAllowedOrigins []string
	LogLevel           string

	KafkaHost              string
	KafkaOrderChangedTopic string

	OrderPurgeSchedule   string
	CancelledOrderMaxAge time.Duration
}

// LoadConfig reads the environment, first filling it from the given dotenv
// files when they exist. Variables already set in the process win.
func LoadConfig(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	ttlHours, err := intEnv("JWT_TTL_HOURS", 7*24)
	if err != nil {
		return Config{}, err
	}
	retentionDays, err := intEnv("CANCELLED_ORDER_RETENTION_DAYS", 30)
	if err != nil {
		return Config{}, err
	}
	cookieSecure, err := boolEnv("COOKIE_SECURE", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPPort:               stringEnv("HTTP_PORT", "8080"),
		DBHost:                 stringEnv("DB_HOST", "localhost"),
		DBPort:                 stringEnv("DB_PORT", "5432"),
		DBUser:                 stringEnv("DB_USER", "postgres"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 stringEnv("DB_NAME", "food_delivery"),
		DBSslMode:              stringEnv("DB_SSLMODE", "disable"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		SessionTTL:             time.Duration(ttlHours) * time.Hour,
		CookieSecure:           cookieSecure,
		AdminSecretKey:         os.Getenv("ADMIN_SECRET_KEY"),
		CORSAllowedOrigins:     listEnv("CORS_ALLOWED_ORIGINS"),
		LogLevel:               stringEnv("LOG_LEVEL", "info"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: stringEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		OrderPurgeSchedule:     os.Getenv("ORDER_PURGE_SCHEDULE"),
		CancelledOrderMaxAge:   time.Duration(retentionDays) * 24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.AdminSecretKey == "" {
		return Config{}, errors.New("ADMIN_SECRET_KEY is required")
	}
	return cfg, nil
}

func (c Config) KafkaBrokers() []string {
	return splitList(c.KafkaHost)
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, raw)
	}
	return v, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return v, nil
}

func listEnv(key string) []string {
	return splitList(os.Getenv(key))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
