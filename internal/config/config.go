package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DatabaseConfig holds PostgreSQL settings for the optional inquiry archive.
// The archive is disabled when Host is empty. Zero pool limits keep the
// archive defaults.
type DatabaseConfig struct {
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT" envDefault:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME"`
	SSLMode            string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC"`
}

// Enabled reports whether a database was configured.
func (c DatabaseConfig) Enabled() bool { return c.Host != "" }

// MinIOConfig holds object storage settings for gallery images.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// Enabled reports whether object storage was configured.
func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// EmailConfig holds the transactional email provider settings.
type EmailConfig struct {
	APIKey  string        `env:"EMAIL_API_KEY"`
	APIURL  string        `env:"EMAIL_API_URL" envDefault:"https://api.resend.com/emails"`
	Timeout time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`
}

// ContactConfig controls the contact form pipeline.
type ContactConfig struct {
	Recipient  string        `env:"CONTACT_RECIPIENT" envDefault:"hello@lacquerloungenails.com"`
	From       string        `env:"CONTACT_FROM" envDefault:"Lacquer Lounge Website <website@lacquerloungenails.com>"`
	RateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	RateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"1h"`
}

// IntegrationsConfig carries third-party keys passed through to the browser unchanged.
type IntegrationsConfig struct {
	MapsAPIKey string `env:"MAPS_API_KEY"`
	GTMID      string `env:"GTM_ID"`
}

// ProxyConfig lists the reverse proxies whose forwarding header is believed.
// With no trusted proxies every client is keyed by its socket address.
type ProxyConfig struct {
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	Header         string   `env:"PROXY_HEADER" envDefault:"X-Forwarded-For"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env          string `env:"APP_ENV" envDefault:"production"`
	Port         string `env:"PORT" envDefault:"8080"`
	BaseURL      string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Database     DatabaseConfig
	MinIO        MinIOConfig
	Email        EmailConfig
	Contact      ContactConfig
	Integrations IntegrationsConfig
	Proxy        ProxyConfig
}

// Development reports whether the app runs in development mode.
func (c *AppConfig) Development() bool { return c.Env == "development" }

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Contact.RateLimit <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", cfg.Contact.RateLimit)
	}
	if cfg.Contact.RateWindow <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_WINDOW must be positive, got %s", cfg.Contact.RateWindow)
	}
	if cfg.Database.Enabled() && (cfg.Database.User == "" || cfg.Database.Name == "") {
		return nil, fmt.Errorf("DB_USER and DB_NAME are required when DB_HOST is set")
	}
	return &cfg, nil
}
