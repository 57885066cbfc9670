package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[Database]
Addr     = "localhost:5432"
User     = "portal"
Database = "truck_portal"

[App]
Host           = "127.0.0.1"
DegradeReads   = true
AllowedOrigins = ["http://localhost:5173"]

[Auth]
Secret   = "s3cret"
TokenTTL = "2h"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:5432", cfg.Database.Addr)
	assert.Equal(t, 3, cfg.Database.MaxRetries)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.True(t, cfg.App.DegradeReads)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.App.AllowedOrigins)
	assert.Equal(t, DefaultCookieName, cfg.Auth.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env_user:pw@db.internal:6432/env_db?sslmode=disable")
	t.Setenv("AUTH_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("DB_MAX_CONNS", "7")

	cfg, err := Load(writeConfig(t, "[App]\nPort = 9000\n"))
	require.NoError(t, err)

	assert.Equal(t, "db.internal:6432", cfg.Database.Addr)
	assert.Equal(t, "env_user", cfg.Database.User)
	assert.Equal(t, "env_db", cfg.Database.Database)
	assert.Equal(t, 7, cfg.Database.PoolSize)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, ":9000", cfg.Addr())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[App]\nPort = 80\n"))
	assert.ErrorContains(t, err, "Auth.Secret")

	_, err = Load(writeConfig(t, "[Auth]\nSecret = \"x\"\n[App]\nPort = 70000\n"))
	assert.ErrorContains(t, err, "App.Port")
}

func TestSampleConfigNeedsSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load(filepath.Join("..", "config.toml"))
	assert.ErrorContains(t, err, "Auth.Secret")

	t.Setenv("AUTH_SECRET", "from-env")
	cfg, err := Load(filepath.Join("..", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL)
}
