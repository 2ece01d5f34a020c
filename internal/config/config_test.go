package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
database:
  url: "postgres://localhost/authgate"
auth:
  jwt_secret: "file-secret"
  frontend_base_url: "http://localhost:5173"
`

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, minimalConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL.Std())
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL.Std())
	assert.Equal(t, 10*time.Second, cfg.Email.SendTimeout.Std())
	assert.True(t, cfg.Auth.ResetAutoLogin)
	assert.False(t, cfg.Auth.NormalizeEmail)
}

func TestLoad_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  url: "postgres://localhost/authgate"
email:
  send_timeout: "3s"
auth:
  jwt_secret: "s"
  frontend_base_url: "https://app.example.com"
  token_ttl: "24h"
  reset_token_ttl: "15m"
  reset_auto_login: false
  normalize_email: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL.Std())
	assert.Equal(t, 15*time.Minute, cfg.Auth.ResetTokenTTL.Std())
	assert.Equal(t, 3*time.Second, cfg.Email.SendTimeout.Std())
	assert.False(t, cfg.Auth.ResetAutoLogin)
	assert.True(t, cfg.Auth.NormalizeEmail)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, minimalConfig)
	t.Setenv("AUTHGATE_JWT_SECRET", "env-secret")
	t.Setenv("AUTHGATE_DATABASE_URL", "postgres://env-host/authgate")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres://env-host/authgate", cfg.Database.DSN)
}

func TestLoad_MissingRequired(t *testing.T) {
	path := writeConfig(t, `
database:
  url: "postgres://localhost/authgate"
auth:
  frontend_base_url: "http://localhost:5173"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
database:
  url: "postgres://localhost/authgate"
auth:
  jwt_secret: "s"
  frontend_base_url: "http://localhost:5173"
  token_ttl: "soon"
`)

	_, err := Load(path)
	require.Error(t, err)
}
