package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	devSessionSecret = "notebook-development-secret"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	Port           string
	AppEnv         string
	LogLevel       string
	DBDriver       string
	DatabaseURL    string
	SessionSecret  string
	SessionTTL     time.Duration
	CookieDomain   string
	CookieSecure   bool
	BcryptCost     int
	AllowedOrigins []string
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// UsingDevSecret reports whether sessions are signed with the built-in key.
func (c *Config) UsingDevSecret() bool {
	return c.SessionSecret == devSessionSecret
}

// Load reads a .env file when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT"),
		AppEnv:        getenv("APP_ENV"),
		LogLevel:      getenv("LOG_LEVEL"),
		DBDriver:      getenv("DB_DRIVER"),
		DatabaseURL:   getenv("DATABASE_URL"),
		SessionSecret: getenv("SESSION_SECRET"),
		CookieDomain:  getenv("COOKIE_DOMAIN"),
		SessionTTL:    168 * time.Hour,
		BcryptCost:    bcrypt.DefaultCost,
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = EnvDevelopment
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}

	if cfg.DatabaseURL == "" {
		if cfg.DBDriver != "sqlite" {
			return nil, fmt.Errorf("DATABASE_URL must be set for driver %q", cfg.DBDriver)
		}
		cfg.DatabaseURL = "notes.db"
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is not set")
		}
		cfg.SessionSecret = devSessionSecret
	}

	if ttl := getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL %q", ttl)
		}
		cfg.SessionTTL = d
	}

	cfg.CookieSecure = cfg.IsProduction()
	if secure := getenv("COOKIE_SECURE"); secure != "" {
		b, err := strconv.ParseBool(secure)
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE %q: %w", secure, err)
		}
		cfg.CookieSecure = b
	}

	if cost := getenv("BCRYPT_COST"); cost != "" {
		n, err := strconv.Atoi(cost)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q", cost)
		}
		cfg.BcryptCost = n
	}

	cfg.AllowedOrigins = allowedOrigins(getenv)

	return cfg, nil
}

func allowedOrigins(getenv func(string) string) []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowed := getenv("ALLOWED_ORIGINS"); allowed != "" {
		for _, origin := range strings.Split(allowed, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
