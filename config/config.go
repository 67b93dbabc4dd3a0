package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`
	// Store selection: "postgres" uses DATABASE_URL, "sqlite" uses SQLITE_PATH
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	DBUrl       string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"booking.db"`
	// Supabase-compatible auth (HS256 secret and/or JWKS for RS256)
	SupabaseUrl       string   `env:"SUPABASE_URL"`
	SupabaseJWTSecret string   `env:"SUPABASE_JWT_SECRET"`
	AdminUserIDs      []string `env:"ADMIN_USER_IDS" envSeparator:","`
	// Transactional email (Resend)
	ResendAPIKey  string        `env:"RESEND_API_KEY"`
	ResendBaseURL string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	EmailFrom     string        `env:"EMAIL_FROM" envDefault:"Nikhil Electrical <onboarding@resend.dev>"`
	AdminEmail    string        `env:"ADMIN_EMAIL" envDefault:"info@nikhilelectrical.com"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"15s"`
	// Branding used by the email templates
	BusinessName  string `env:"BUSINESS_NAME" envDefault:"Nikhil Electrical Sales & Services"`
	BusinessShort string `env:"BUSINESS_SHORT_NAME" envDefault:"Nikhil Electrical"`
	BusinessPhone string `env:"BUSINESS_PHONE" envDefault:"098250 14775"`
	BusinessTag   string `env:"BUSINESS_TAGLINE" envDefault:"Government Approved Contractors | Gujarat, India"`
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; production injects real environment variables
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Strip trailing slash to avoid double slashes when joining paths (.co//auth)
	cfg.SupabaseUrl = strings.TrimRight(cfg.SupabaseUrl, "/")
	cfg.ResendBaseURL = strings.TrimRight(cfg.ResendBaseURL, "/")
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	switch cfg.StoreDriver {
	case "postgres":
		if cfg.DBUrl == "" {
			log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
		}
	case "sqlite":
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY not configured. Notification emails will not be sent.")
	}

	return cfg, nil
}

// JWKSURL returns the Supabase JWKS endpoint, or "" when no project URL is set.
func (c *Config) JWKSURL() string {
	if c.SupabaseUrl == "" {
		return ""
	}
	return c.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
}
