package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendSQLite, cfg.SessionBackend)
	assert.Equal(t, "vascoUser", cfg.SessionKey)
	assert.Equal(t, "vasco.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.Zero(t, cfg.LoginDelay)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("VASCO_ENV", "production")
	t.Setenv("VASCO_SESSION_BACKEND", "redis")
	t.Setenv("VASCO_REDIS_DB", "3")
	t.Setenv("VASCO_LOGIN_DELAY", "1s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, BackendRedis, cfg.SessionBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, time.Second, cfg.LoginDelay)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("VASCO_SESSION_BACKEND", "localstorage")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("VASCO_SESSION_DURATION", "forever")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_EmptySessionKey(t *testing.T) {
	cfg := &Config{SessionBackend: BackendMemory}
	assert.Error(t, cfg.Validate())

	cfg.SessionKey = "vascoUser"
	assert.NoError(t, cfg.Validate())
}
