package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/logger"
	"github.com/telartis/picqer-ontime/services/shipping"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Host string
	Port string

	WebhookUser     string
	WebhookPassword string

	Carrier  ontime.Config
	Shipping shipping.Settings

	AppLogDir   string
	AuditLogDir string
	LogLevel    string

	Database Database
}

// Database configures the optional audit database.
type Database struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
	SSLMode  string
}

func (d Database) Enabled() bool { return d.Host != "" }

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Error("Error loading .env file", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config from getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	environment, err := ontime.ParseEnvironment(getenv("ONTIME_ENVIRONMENT"))
	if err != nil {
		return nil, fmt.Errorf("ONTIME_ENVIRONMENT: %w", err)
	}

	timeout := ontime.DefaultTimeout
	if raw := env("ONTIME_TIMEOUT", ""); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("ONTIME_TIMEOUT: %w", err)
		}
	}

	tiers := shipping.DefaultTiers()
	if path := env("PRODUCT_TIERS_FILE", ""); path != "" {
		tiers, err = LoadTiers(path)
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Host:            env("APP_HOST", "0.0.0.0"),
		Port:            env("APP_PORT", "8080"),
		WebhookUser:     env("WEBHOOK_USER", ""),
		WebhookPassword: getenv("WEBHOOK_PASSWORD"),
		Carrier: ontime.Config{
			Endpoint: env("ONTIME_ENDPOINT", ""),
			Credentials: ontime.Credentials{
				User:          env("ONTIME_USER", ""),
				AccountNumber: env("ONTIME_ACCOUNT", ""),
				APIPassword:   getenv("ONTIME_API_PASSWORD"),
				Environment:   environment,
			},
			Timeout: timeout,
		},
		Shipping: shipping.Settings{
			SenderEmail: env("SENDER_EMAIL", ""),
			SenderPhone: env("SENDER_PHONE", ""),
			Tiers:       tiers,
		},
		AppLogDir:   env("APP_LOG_DIR", "log/app"),
		AuditLogDir: env("AUDIT_LOG_DIR", "log/audit"),
		LogLevel:    env("LOG_LEVEL", "info"),
		Database: Database{
			Host:     env("DB_HOST", ""),
			Port:     env("DB_PORT", "5432"),
			Database: env("DB_DATABASE", ""),
			Username: env("DB_USERNAME", ""),
			Password: getenv("DB_PASSWORD"),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing or malformed setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Carrier.Endpoint == "" {
		errs = append(errs, errors.New("ONTIME_ENDPOINT is required"))
	}
	if c.Carrier.Credentials.User == "" {
		errs = append(errs, errors.New("ONTIME_USER is required"))
	}
	if c.Carrier.Credentials.AccountNumber == "" {
		errs = append(errs, errors.New("ONTIME_ACCOUNT is required"))
	}
	if c.Carrier.Credentials.APIPassword == "" {
		errs = append(errs, errors.New("ONTIME_API_PASSWORD is required"))
	}
	if c.Carrier.Timeout <= 0 {
		errs = append(errs, errors.New("ONTIME_TIMEOUT must be positive"))
	}
	if (c.WebhookUser == "") != (c.WebhookPassword == "") {
		errs = append(errs, errors.New("WEBHOOK_USER and WEBHOOK_PASSWORD must be set together"))
	}
	if err := shipping.ValidateTiers(c.Shipping.Tiers); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
