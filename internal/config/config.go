package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	HTTPAddr    string

	LogLevel  string
	LogFormat string

	// Liveness monitor tuning
	SweepInterval time.Duration
	ProbeTimeout  time.Duration
	ProbePort     string

	CORSAllowedOrigins string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTL:             durationEnv("JWT_TTL", 24*time.Hour),
		HTTPAddr:           stringEnv("HTTP_ADDR", ":8080"),
		LogLevel:           stringEnv("LOG_LEVEL", "info"),
		LogFormat:          stringEnv("LOG_FORMAT", "text"),
		SweepInterval:      durationEnv("SWEEP_INTERVAL", 5*time.Minute),
		ProbeTimeout:       durationEnv("PROBE_TIMEOUT", 2*time.Second),
		ProbePort:          stringEnv("PROBE_PORT", "7"),
		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.SweepInterval < time.Second {
		return nil, fmt.Errorf("SWEEP_INTERVAL too short: %s", cfg.SweepInterval)
	}

	return cfg, nil
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
