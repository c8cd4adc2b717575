package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"storage-provider/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "minio", cfg.Storage.Driver)
	assert.Equal(t, "us-east-1", cfg.Storage.Region)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, 1000, cfg.Storage.ListPageSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "assets")
	t.Setenv("STORAGE_REGION", "eu-west-1")
	t.Setenv("STORAGE_USE_SSL", "false")
	t.Setenv("STORAGE_LIST_PAGE_SIZE", "250")
	t.Setenv("SERVER_API_KEY", "secret")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.Storage.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, 250, cfg.Storage.ListPageSize)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
	assert.NoError(t, cfg.Storage.Validate())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_DRIVER=memory\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("STORAGE_DRIVER")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_EnvironmentBeatsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_BUCKET=from-file\n"), 0o600))
	t.Setenv("STORAGE_BUCKET", "from-env")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Storage.Bucket)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := "storage:\n  bucket: assets\n  region: eu-west-1\n  force_path_style: true\nserver:\n  port: \"9090\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName+".yaml"), []byte(yaml), 0o600))
	t.Setenv("STORAGE_REGION", "eu-central-1")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.Storage.Bucket)
	assert.True(t, cfg.Storage.ForcePathStyle)
	assert.Equal(t, "9090", cfg.Server.Port)
	// Environment still wins over the file.
	assert.Equal(t, "eu-central-1", cfg.Storage.Region)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "minio", cfg.Storage.Driver)
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName+".yaml"), []byte("storage: [unclosed\n"), 0o600))

	_, err := config.LoadConfig(dir)
	assert.ErrorContains(t, err, "read config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		cfg.Storage.Bucket = "assets"
		return cfg
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("MissingBucket", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.Bucket = ""
		assert.ErrorContains(t, cfg.Validate(), "bucket")
	})

	t.Run("CollectsAll", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = "http"
		cfg.Log.Format = "xml"
		err := cfg.Validate()
		assert.ErrorContains(t, err, "invalid server port")
		assert.ErrorContains(t, err, "unknown log format")
	})
}
