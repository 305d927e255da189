package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 2*time.Second, cfg.SubmitDelay)
	assert.Equal(t, 30*time.Second, cfg.RateInterval)
	assert.True(t, cfg.SeedHistory)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=kirimuang sslmode=disable", cfg.DatabaseURL())
	assert.False(t, cfg.NeedsPostgres())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("KIRIMUANG_HTTP_ADDR", ":9999")
	t.Setenv("KIRIMUANG_SUBMIT_DELAY", "150ms")
	t.Setenv("KIRIMUANG_PREFERENCE_STORE", "postgres")
	t.Setenv("KIRIMUANG_DB_CONN_STR", "postgres://u:p@db/kirimuang")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 150*time.Millisecond, cfg.SubmitDelay)
	assert.Equal(t, "postgres://u:p@db/kirimuang", cfg.DatabaseURL())
	assert.True(t, cfg.NeedsPostgres())
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("KIRIMUANG_LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("KIRIMUANG_LOG_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown storage", env: map[string]string{"KIRIMUANG_STORAGE": "mongo"}},
		{name: "bad log level", env: map[string]string{"KIRIMUANG_LOG_LEVEL": "chatty"}},
		{name: "telegram without chat", env: map[string]string{"KIRIMUANG_TELEGRAM_TOKEN": "123:abc"}},
		{name: "zero rate interval", env: map[string]string{"KIRIMUANG_RATE_INTERVAL": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
