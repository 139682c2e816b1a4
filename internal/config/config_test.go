package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should fall back to defaults without a config file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, ":8181", cfg.Addr)
		assert.Equal(t, "USD", cfg.Currency)
		assert.Equal(t, "storage/vacaytracker.db", cfg.Storage.Path)
		assert.Equal(t, 3, cfg.Notifications.TTLSeconds)
		assert.Equal(t, 1500, cfg.Gateway.LatencyMs)
	})

	t.Run("should overlay values from a YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\ncurrency: EUR\n"), 0644))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "EUR", cfg.Currency)
		assert.Equal(t, "storage/vacaytracker.db", cfg.Storage.Path)
	})

	t.Run("should overlay environment variables last", func(t *testing.T) {
		t.Setenv("VACAY_CURRENCY", "GBP")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "GBP", cfg.Currency)
	})
}
