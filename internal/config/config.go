package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/MathLeoYa/inmobiliaria/internal/storage"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

const AppName = "inmobiliaria-api"

const (
	DefaultPort            = "8080"
	DefaultRateLimit       = 30
	DefaultRateLimitWindow = 15 * time.Minute
)

// Config holds all application configuration. Everything comes from the
// environment; a local .env file is loaded when present.
type Config struct {
	AppPort   string
	DBUrl     string
	JWTSecret []byte

	CORSAllowedOrigins []string

	// Optional; rate limiting is disabled when empty.
	RedisURL        string
	RateLimit       int
	RateLimitWindow time.Duration

	// Optional; the uploads endpoint is disabled when the bucket is unset.
	S3 storage.S3Config

	SeedData bool
	LogLevel string
}

// LoadConfig reads the environment and fails fast on anything required.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		utils.Logger.Info("Loaded configuration from .env file")
	}

	cfg := &Config{
		AppPort:         envOr("PORT", DefaultPort),
		DBUrl:           os.Getenv("DATABASE_URL"),
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		RedisURL:        os.Getenv("REDIS_URL"),
		RateLimit:       envInt("RATE_LIMIT", DefaultRateLimit),
		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
		SeedData:        envBool("SEED_DATA"),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		S3: storage.S3Config{
			Bucket:          os.Getenv("S3_BUCKET"),
			Region:          os.Getenv("S3_REGION"),
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			Prefix:          envOr("S3_PREFIX", "listings"),
		},
	}

	if cfg.DBUrl == "" {
		utils.Logger.Fatal("DATABASE_URL is required")
	}
	if len(cfg.JWTSecret) == 0 {
		utils.Logger.Fatal("JWT_SECRET is required")
	}

	origins := envOr("CORS_ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.Logger.Fatalf("Invalid %s value %q", key, raw)
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		utils.Logger.Fatalf("Invalid %s value %q", key, raw)
	}
	return v
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}
