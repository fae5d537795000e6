package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"cdn-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://striketracker.highwinds.com", cfg.API.BaseURL)
	assert.Equal(t, "cdn-manager", cfg.API.ApplicationID)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Zero(t, cfg.API.RequestsPerSecond)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "cdn-snapshots", cfg.Storage.Bucket)
	assert.Equal(t, 120, cfg.Lock.TTLSeconds)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.Brokers)
	assert.Equal(t, "cdn.reconciliations", cfg.Events.Topic)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("API_ACCOUNT", "a1b2c3")
	t.Setenv("API_TOKEN", "tok")
	t.Setenv("API_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("DATABASE_ENABLED", "true")
	t.Setenv("EVENTS_BROKERS", "k1:9092,k2:9092")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "a1b2c3", cfg.API.Account)
	assert.Equal(t, "tok", cfg.API.Token)
	assert.Equal(t, 2.5, cfg.API.RequestsPerSecond)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Brokers)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := "api:\n  account: fromfile\nserver:\n  port: \"9000\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.API.Account)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api: [unterminated"), 0o600))

	_, err := config.LoadConfig(dir)
	assert.Error(t, err)
}
