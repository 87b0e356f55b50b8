package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is built once at startup and
// injected into every consumer; business logic never reads the environment.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPPort    string

	OTLPEndpoint string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	CORSAllowedOrigins []string

	AdminAPIToken string

	RateLimit RateLimitConfig
}

// RateLimitConfig throttles public review submission. The limiter is off
// unless a redis address is configured.
type RateLimitConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ReviewRatePerMinute float64
	ReviewBurst         int
}

func (c RateLimitConfig) Enabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

var (
	ErrMissingDBCredentials = errors.New("missing database credentials")
	ErrMissingAdminToken    = errors.New("missing admin api token")
)

// Load loads configuration from environment variables and .env file.
// Missing required database credentials abort startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")

	cfg := Config{
		AppName:           getenv("APP_SERVICE", "catalogo"),
		AppVersion:        getenv("APP_VERSION", "0.1.0"),
		Environment:       environment,
		HTTPPort:          getenv("PORT", "8080"),
		OTLPEndpoint:      getenv("OTLP_ENDPOINT", "localhost:4317"),
		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "catalogo"),
		DBUser:            strings.TrimSpace(os.Getenv("DATABASE_USER")),
		DBPassword:        strings.TrimSpace(os.Getenv("DATABASE_PASSWORD")),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 20),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 600),
		AdminAPIToken:     strings.TrimSpace(os.Getenv("ADMIN_API_TOKEN")),
		RateLimit: RateLimitConfig{
			RedisAddr:           strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			RedisPassword:       strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
			RedisDB:             getenvInt("REDIS_DB", 0),
			ReviewRatePerMinute: getenvFloat("REVIEW_RATE_PER_MINUTE", 6),
			ReviewBurst:         getenvInt("REVIEW_RATE_BURST", 3),
		},
	}

	cfg.CORSAllowedOrigins = corsOrigins(cfg.Environment)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the startup invariants: database credentials are always
// required, and the admin token is required outside development.
func (c Config) Validate() error {
	if c.DBType != "sqlite" {
		if c.DBUser == "" || c.DBPassword == "" || c.DBName == "" {
			return fmt.Errorf("%w: DATABASE_USER, DATABASE_PASSWORD and DATABASE_NAME are required", ErrMissingDBCredentials)
		}
	}
	if c.IsProduction() && c.AdminAPIToken == "" {
		return fmt.Errorf("%w: ADMIN_API_TOKEN is required in production", ErrMissingAdminToken)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func corsOrigins(environment string) []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if strings.TrimSpace(raw) == "" {
		if strings.ToLower(environment) == "production" {
			raw = os.Getenv("CORS_ALLOWED_ORIGINS_PROD")
		} else {
			raw = getenv("CORS_ALLOWED_ORIGINS_DEV", "http://localhost:3000,http://localhost:5173")
		}
	}
	return splitList(raw)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
