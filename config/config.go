package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultSessionSecret = "pawcare-secret-key-change-this"

type Config struct {
	Port       string
	Env        string
	StaticDir  string
	CORSOrigin []string

	DB       DatabaseConfig
	Session  SessionConfig
	Admin    AdminConfig
	SMTP     SMTPConfig
	Twilio   TwilioConfig
	LogLevel string
	LogFmt   string
}

type SessionConfig struct {
	Secret      string
	Store       string // memory or database
	TTL         time.Duration
	RememberTTL time.Duration
}

// AdminConfig seeds the first admin account. An empty password means a
// random one is generated and logged once at startup.
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Operator string // receives new booking and feedback alerts
}

// Enabled reports whether real email delivery is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.User != "" && s.Password != ""
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
}

func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.From != ""
}

// Load reads the configuration from the environment. godotenv has already
// populated it from .env when one exists.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		Env:       strings.ToLower(getEnv("APP_ENV", "development")),
		StaticDir: os.Getenv("STATIC_DIR"),
		DB:        loadDatabaseConfig(),
		Session: SessionConfig{
			Secret:      getEnv("SESSION_SECRET", defaultSessionSecret),
			Store:       strings.ToLower(getEnv("SESSION_STORE", "memory")),
			TTL:         time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)) * time.Hour,
			RememberTTL: 30 * 24 * time.Hour,
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Email:    getEnv("ADMIN_EMAIL", "admin@pawcare.com"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     getEnv("SMTP_FROM", getEnv("SMTP_USER", "noreply@pawcare.com")),
		},
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			From:       os.Getenv("TWILIO_PHONE_NUMBER"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFmt:   getEnv("LOG_FORMAT", "text"),
	}
	cfg.SMTP.Operator = getEnv("OPERATOR_EMAIL", getEnv("ADMIN_EMAIL", cfg.SMTP.User))

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigin = append(cfg.CORSOrigin, o)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return errors.New("DB_DRIVER must be one of sqlite, mysql, postgres")
	}
	switch c.Session.Store {
	case "memory", "database":
	default:
		return errors.New("SESSION_STORE must be memory or database")
	}
	if c.IsProduction() && c.Session.Secret == defaultSessionSecret {
		return errors.New("SESSION_SECRET must be set in production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
