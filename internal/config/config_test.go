package config_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steakhouse/storefront/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, "server:\n  port: 9090\n"))
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "memory", cfg.Store.Backend)
		assert.Equal(t, time.Hour, cfg.Store.TTL)
		assert.Equal(t, "obfuscate", cfg.Store.Codec)
		assert.Equal(t, 15*time.Second, cfg.OrderAPI.Timeout)
		assert.Equal(t, 2, cfg.OrderAPI.Retries)
		assert.Equal(t, "storefront_session", cfg.Session.CookieName)
	})

	t.Run("file values", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, `
store:
  backend: redis
  ttl: 30m
  max_value_size: 1024
order_api:
  url: https://orders.example.com/exec
  retries: 0
`))
		require.NoError(t, err)

		assert.Equal(t, "redis", cfg.Store.Backend)
		assert.Equal(t, 30*time.Minute, cfg.Store.TTL)
		assert.Equal(t, 1024, cfg.Store.MaxValueSize)
		assert.Equal(t, "https://orders.example.com/exec", cfg.OrderAPI.URL)
		assert.Equal(t, 0, cfg.OrderAPI.Retries)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("STORE_TTL", "5m")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := config.Load(writeConfig(t, "store:\n  ttl: 30m\n"))
		require.NoError(t, err)

		assert.Equal(t, 5*time.Minute, cfg.Store.TTL)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestNewRedisClient(t *testing.T) {
	srv := miniredis.RunT(t)
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)
	host := srv.Host()

	client, err := config.NewRedisClient(config.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	defer client.Close()

	srv.Close()
	_, err = config.NewRedisClient(config.RedisConfig{Host: host, Port: port})
	assert.Error(t, err)
}
