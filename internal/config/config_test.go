package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: test
  port: "9090"
  allowed_cors_domains:
    - http://localhost:3000
gin:
  mode: test
postgres:
  host: db
  port: "5432"
  user: app
  password: secret
  db: franchise
auth:
  public_key: %s
  access_ttl: 5m
`

func writeConfig(t *testing.T, publicKey string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte(fmt.Sprintf(testConfig, publicKey))
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestLoad(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("-----BEGIN PUBLIC KEY-----"))
	conf, err := Load(writeConfig(t, key))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=franchise sslmode=disable", conf.Postgres.DSN())
	assert.Equal(t, 5*time.Minute, conf.Auth.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, conf.Auth.RefreshTTL)
	assert.Equal(t, "localhost:6379", conf.Redis.Addr)
	assert.False(t, conf.Auth.CanIssueTokens())
}

func TestLoad_EnvOverride(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("file-key"))
	envKey := base64.StdEncoding.EncodeToString([]byte("env-key"))
	t.Setenv("AUTH_PUBLIC_KEY", envKey)
	t.Setenv("API_PORT", "7070")

	conf, err := Load(writeConfig(t, key))
	require.NoError(t, err)

	assert.Equal(t, envKey, conf.Auth.PublicKey)
	assert.Equal(t, "7070", conf.API.Port)
}

func TestLoad_EnvOverrideNested(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("file-key"))
	t.Setenv("POSTGRES_HOST", "prod-db")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("AUTH_COOKIE_SECURE", "true")
	t.Setenv("AUTH_REFRESH_TTL", "12h")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("API_ALLOWED_CORS_DOMAINS", "https://a.example.com,https://b.example.com")

	conf, err := Load(writeConfig(t, key))
	require.NoError(t, err)

	assert.Equal(t, "prod-db", conf.Postgres.Host)
	assert.Equal(t, "release", conf.Gin.Mode)
	assert.True(t, conf.Auth.CookieSecure)
	assert.Equal(t, 12*time.Hour, conf.Auth.RefreshTTL)
	assert.Equal(t, 5*time.Minute, conf.Auth.AccessTTL)
	assert.Equal(t, "cache:6379", conf.Redis.Addr)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, conf.API.AllowedCORSDomains)
}

func TestLoad_MissingPublicKey(t *testing.T) {
	_, err := Load(writeConfig(t, `""`))
	assert.ErrorIs(t, err, errMissingPublicKey)
}

func TestLoad_InvalidPublicKey(t *testing.T) {
	_, err := Load(writeConfig(t, "not*base64"))
	assert.ErrorContains(t, err, "auth.public_key is not valid base64")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
