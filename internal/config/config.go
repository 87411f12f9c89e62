package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrProductionSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port            string
	Env             string
	DatabaseDSN     string
	JWTSecret       string
	JWTExpiry       time.Duration
	SentryDSN       string
	CORSOrigins     []string
	GeneratorConfig string
}

// Load reads the server configuration from the environment. It exits the
// process when the development JWT secret is used in production.
func Load() Config {
	cfg := FromEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	return cfg
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return Config{
		Port:            get("PORT", "8080"),
		Env:             get("ENV", "development"),
		DatabaseDSN:     get("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passforge?parseTime=true"),
		JWTSecret:       get("JWT_SECRET", devJWTSecret),
		JWTExpiry:       24 * time.Hour,
		SentryDSN:       getenv("SENTRY_DSN"),
		CORSOrigins:     splitList(get("CORS_ORIGINS", "*")),
		GeneratorConfig: getenv("GENERATOR_CONFIG"),
	}
}

// Validate rejects configurations that must not be served.
func (c Config) Validate() error {
	if c.Env == "production" && c.JWTSecret == devJWTSecret {
		return ErrProductionSecret
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
