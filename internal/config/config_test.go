package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-admin-dashboard/internal/config"
	"github.com/stretchr/testify/require"
)

func TestAPIBaseURL(t *testing.T) {
	t.Run("default local", func(t *testing.T) {
		t.Setenv("ENV", "")
		t.Setenv("API_BASE_URL", "")
		require.Equal(t, "http://localhost:8000/api", config.New().GetAPIBaseURL())
	})

	t.Run("override trims trailing slash", func(t *testing.T) {
		t.Setenv("ENV", "")
		t.Setenv("API_BASE_URL", "http://backend:9000/")
		require.Equal(t, "http://backend:9000/api", config.New().GetAPIBaseURL())
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		t.Setenv("API_BASE_URL", "http://backend:9000")
		require.Equal(t, "https://api.tajweer.com/api", config.New().GetAPIBaseURL())
	})
}

func TestRequestTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "")
	require.Equal(t, 30*time.Second, config.New().GetRequestTimeout())

	t.Setenv("REQUEST_TIMEOUT", "5s")
	require.Equal(t, 5*time.Second, config.New().GetRequestTimeout())

	t.Setenv("REQUEST_TIMEOUT", "soon")
	require.Equal(t, 30*time.Second, config.New().GetRequestTimeout())
}

func TestLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENV", "")
	require.Equal(t, "debug", config.New().GetLogLevel())

	t.Setenv("ENV", "PROD")
	require.Equal(t, "info", config.New().GetLogLevel())
}

func TestStoreDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("REDIS_DB", "x")
	c := config.New()
	require.Equal(t, config.StoreBackendFile, c.GetStoreBackend())
	require.Equal(t, 0, c.GetRedisDB())
}
