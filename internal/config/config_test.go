package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "USD", cfg.Invoice.Currency)
	assert.Equal(t, 30, cfg.Invoice.DueInDays)
	assert.Equal(t, "INV", cfg.Invoice.NumberPrefix)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVOICEGEN_SERVER_PORT", ":9090")
	t.Setenv("INVOICEGEN_INVOICE_CURRENCY", "INR")
	t.Setenv("INVOICEGEN_INVOICE_DUE_IN_DAYS", "15")
	t.Setenv("INVOICEGEN_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "INR", cfg.Invoice.Currency)
	assert.Equal(t, 15, cfg.Invoice.DueInDays)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PaaSPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPaaS(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("INVOICEGEN_SERVER_PORT", ":9999")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
}
