package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "cart", cfg.CartStorageKey)
	assert.Equal(t, "USD", cfg.Currency)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "3000")
	t.Setenv("CATALOG_BASE_URL", "http://catalog.internal")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg := Load()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "http://catalog.internal", cfg.CatalogBaseURL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
}
