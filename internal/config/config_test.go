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
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081/api", cfg.APIBase)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.ToastTTL)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, ":8081", cfg.MockAPI.Addr)
	assert.Equal(t, "", cfg.MockAPI.DSN)
	assert.Equal(t, 12*time.Hour, cfg.Sessions.Idle)
	assert.Equal(t, 1000, cfg.Sessions.Max)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("API_BASE", "http://clinic.internal:9000/api")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://clinic.internal:9000/api", cfg.APIBase)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HTTP_ADDR", ":9999")

	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_name: clinica-dev
api_base: http://127.0.0.1:8081/api
http:
  addr: ":7000"
log:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "clinica-dev", cfg.AppName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("API_BASE", "no-es-url")

	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
