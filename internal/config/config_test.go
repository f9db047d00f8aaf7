package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load("")

	assert.Equal(t, 4, cfg.Search.PopularLimit)
	assert.Equal(t, "₽", cfg.Search.Currency)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POPULAR_ROUTES_LIMIT", "6")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load("")

	assert.Equal(t, 6, cfg.Search.PopularLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("POPULAR_ROUTES_LIMIT", "many")

	cfg := Load("")

	assert.Equal(t, 4, cfg.Search.PopularLimit)
}
