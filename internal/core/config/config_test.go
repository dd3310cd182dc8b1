package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requiredEnv = map[string]string{
	"HOOD_API_USER":     "api-user",
	"HOOD_API_PASSWORD": "api-secret",
	"HOOD_ACCOUNT_NAME": "shop",
	"HOOD_ACCOUNT_PASS": "shop-secret",
	"DB_DSN":            "file::memory:",
	"REDIS_URL":         "redis://localhost:6379/0",
}

func setRequired(t *testing.T) {
	t.Helper()
	for k, v := range requiredEnv {
		t.Setenv(k, v)
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("HOOD_TIMEOUT")
	os.Unsetenv("DB_DRIVER")
	setRequired(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "https://www.hood.de/api.htm", cfg.Hood.URL)
	assert.Equal(t, 30*time.Second, cfg.Hood.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Hood.ProbeTimeout)
	assert.Equal(t, time.Second, cfg.Hood.UploadInterval)
	assert.Equal(t, 10*time.Minute, cfg.Redis.SyncLockTTL)
	assert.Equal(t, 6*time.Hour, cfg.Redis.CategoryCacheTTL)
	assert.False(t, cfg.Proxy.Enabled)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("HOOD_TIMEOUT", "45s")
	t.Setenv("HOOD_UPLOAD_INTERVAL", "250ms")
	t.Setenv("HOOD_PROXY_ENABLED", "true")
	t.Setenv("HOOD_PROXY_HOST", "proxy.local")
	t.Setenv("HOOD_PROXY_PORT", "3128")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "api-user", cfg.Hood.APIUser)
	assert.Equal(t, "shop", cfg.Hood.AccountName)
	assert.Equal(t, 45*time.Second, cfg.Hood.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Hood.UploadInterval)
	assert.True(t, cfg.Proxy.Enabled)
	assert.Equal(t, "proxy.local", cfg.Proxy.Hostname)
	assert.Equal(t, 3128, cfg.Proxy.Port)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
HOOD_API_USER=file-user
HOOD_API_PASSWORD=file-secret
HOOD_ACCOUNT_NAME=file-shop
HOOD_ACCOUNT_PASS=file-pass
DB_DSN=host=db user=hood dbname=hood
REDIS_URL=redis://cache:6379/1
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	for k := range requiredEnv {
		os.Unsetenv(k)
	}
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "file-user", cfg.Hood.APIUser)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	for k := range requiredEnv {
		os.Unsetenv(k)
	}

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}

// TestLoad_UnsupportedDriver verifies that only known gorm drivers are accepted.
func TestLoad_UnsupportedDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_DRIVER", "oracle")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}
