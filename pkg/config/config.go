package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	SMTP      SMTPConfig
	Contact   ContactConfig
	GeoIP     GeoIPConfig
	Rates     RatesConfig
	RateLimit RateLimitConfig
	Sentry    SentryConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	Environment    string
	ServiceName    string
	ReadTimeout    int // seconds
	WriteTimeout   int // seconds
	RequestTimeout int // seconds, applied per request via timeout middleware
	CORSOrigins    string // Comma-separated list of allowed origins
}

// SMTPConfig holds outbound mail configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // sender identity, fixed
	Inbox    string // business inbox that receives contact notifications
}

// ContactConfig holds contact form limits
type ContactConfig struct {
	MaxAttachments    int
	MaxAttachmentMB   int
	RateLimitPerMin   int
}

// GeoIPConfig holds geolocation lookup configuration
type GeoIPConfig struct {
	TimeoutSeconds int // per-provider timeout
}

// RatesConfig holds exchange-rate fetch configuration
type RatesConfig struct {
	APIURL         string
	TimeoutSeconds int
	CacheTTLMins   int
}

// RateLimitConfig holds global API rate limiting configuration
type RateLimitConfig struct {
	Enabled      bool
	RequestsPerMin int
}

// SentryConfig holds error reporting configuration
type SentryConfig struct {
	DSN     string
	Enabled bool
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Environment:    getEnv("ENVIRONMENT", "development"),
			ServiceName:    serviceName,
			ReadTimeout:    getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout:   getEnvAsInt("WRITE_TIMEOUT", 30),
			RequestTimeout: getEnvAsInt("REQUEST_TIMEOUT", 25),
			CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:5173"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
			Inbox:    getEnv("CONTACT_INBOX", ""),
		},
		Contact: ContactConfig{
			MaxAttachments:  getEnvAsInt("CONTACT_MAX_ATTACHMENTS", 5),
			MaxAttachmentMB: getEnvAsInt("CONTACT_MAX_ATTACHMENT_MB", 10),
			RateLimitPerMin: getEnvAsInt("CONTACT_RATE_LIMIT_PER_MIN", 5),
		},
		GeoIP: GeoIPConfig{
			TimeoutSeconds: getEnvAsInt("GEOIP_TIMEOUT", 5),
		},
		Rates: RatesConfig{
			APIURL:         getEnv("RATES_API_URL", "https://open.er-api.com/v6/latest/USD"),
			TimeoutSeconds: getEnvAsInt("RATES_TIMEOUT", 5),
			CacheTTLMins:   getEnvAsInt("RATES_CACHE_TTL_MINS", 60),
		},
		RateLimit: RateLimitConfig{
			Enabled:        getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RequestsPerMin: getEnvAsInt("RATE_LIMIT_PER_MIN", 120),
		},
		Sentry: SentryConfig{
			DSN:     getEnv("SENTRY_DSN", ""),
			Enabled: getEnvAsBool("SENTRY_ENABLED", false),
		},
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	if cfg.SMTP.Inbox == "" {
		cfg.SMTP.Inbox = cfg.SMTP.From
	}

	return cfg, nil
}

// SMTPAddr returns the SMTP host:port string
func (c *SMTPConfig) SMTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MaxAttachmentBytes returns the per-file upload cap in bytes
func (c *ContactConfig) MaxAttachmentBytes() int64 {
	return int64(c.MaxAttachmentMB) << 20
}

// AllowedOrigins returns CORS origins as a slice
func (c *ServerConfig) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
