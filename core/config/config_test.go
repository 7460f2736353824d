package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "/metrics", cfg.Server.MetricsPath)
		assert.Equal(t, 3600, cfg.Storage.TimeoutSeconds)
		assert.False(t, cfg.Storage.IsPrivate)
		assert.True(t, cfg.Storage.UseSSL)
		assert.Equal(t, 30, cfg.Storage.ConnectTimeoutSeconds)
		assert.Empty(t, cfg.Storage.Bucket)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Database.Enabled)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("STORAGE_ACCESS_KEY_ID", "id")
		t.Setenv("STORAGE_BUCKET", "assets")
		t.Setenv("STORAGE_TIMEOUT_SECONDS", "600")
		t.Setenv("STORAGE_IS_PRIVATE", "true")
		t.Setenv("SERVER_PORT", "9090")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "id", cfg.Storage.AccessKeyID)
		assert.Equal(t, "assets", cfg.Storage.Bucket)
		assert.Equal(t, 600, cfg.Storage.TimeoutSeconds)
		assert.True(t, cfg.Storage.IsPrivate)
		assert.Equal(t, "9090", cfg.Server.Port)
	})

	t.Run("DotEnv", func(t *testing.T) {
		dir := t.TempDir()
		// Registered so the variable is restored after the test.
		t.Setenv("STORAGE_ENDPOINT", "")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_ENDPOINT=oss-cn-hangzhou.aliyuncs.com\n"), 0o600))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", cfg.Storage.Endpoint)
	})
}
