package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
port = 9001
log_level = "trace"
backend_url = "http://localhost:8000/api"
redis_host = "localhost"
redis_port = "6379"
timezone = "America/Sao_Paulo"
retry_max_retries = 3
retry_exponential = true
allowed_origins = ["http://localhost:5173"]

[production]
host = "0.0.0.0"
port = 9000
log_level = "info"
logs_path = "/var/log/pandafit/service"
backend_url = "https://pandafit.example.com/api"
session_ttl_hours = 24
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testToml), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("dev", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, 3, cfg.RetryMaxRetries)
	assert.True(t, cfg.RetryExponential)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryInterval())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, 30*time.Second, cfg.QueryCacheTTL())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("production", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "https://pandafit.example.com/api", cfg.BackendURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout())
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("staging", writeTestConfig(t))
	assert.EqualError(t, err, "unknown env: staging")

	_, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	var empty Toml
	_, err = empty.Get("prod")
	assert.EqualError(t, err, "no config section for env: prod")
}

func TestToml_Defaults(t *testing.T) {
	tml := Toml{Development: &Config{}}
	cfg, err := tml.Get("development")
	require.NoError(t, err)

	assert.Equal(t, backend.DefaultBaseURL, cfg.BackendURL)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout())
}

func TestConfig_BadTimezone(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}
	_, err := cfg.Location()
	assert.Error(t, err)
}
