package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Invoice InvoiceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// InvoiceConfig holds the defaults applied to freshly created invoices.
type InvoiceConfig struct {
	Currency     string `mapstructure:"currency"`
	DueInDays    int    `mapstructure:"due_in_days"`
	NumberPrefix string `mapstructure:"number_prefix"`
}

// Load reads configuration from environment variables with the INVOICEGEN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOICEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Invoice defaults
	v.SetDefault("invoice.currency", "USD")
	v.SetDefault("invoice.due_in_days", 30)
	v.SetDefault("invoice.number_prefix", "INV")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "INVOICEGEN_SERVER_PORT",
		"server.read_timeout":   "INVOICEGEN_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "INVOICEGEN_SERVER_WRITE_TIMEOUT",
		"server.environment":    "INVOICEGEN_SERVER_ENVIRONMENT",
		"log.level":             "INVOICEGEN_LOG_LEVEL",
		"log.format":            "INVOICEGEN_LOG_FORMAT",
		"cors.allowed_origins":  "INVOICEGEN_CORS_ALLOWED_ORIGINS",
		"invoice.currency":      "INVOICEGEN_INVOICE_CURRENCY",
		"invoice.due_in_days":   "INVOICEGEN_INVOICE_DUE_IN_DAYS",
		"invoice.number_prefix": "INVOICEGEN_INVOICE_NUMBER_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVOICEGEN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOICEGEN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Invoice = InvoiceConfig{
		Currency:     v.GetString("invoice.currency"),
		DueInDays:    v.GetInt("invoice.due_in_days"),
		NumberPrefix: v.GetString("invoice.number_prefix"),
	}

	return cfg, nil
}
