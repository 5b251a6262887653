package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"chat": {
			"model": "claude-3-sonnet-20240229",
			"max_tokens": 512,
			"temperature": 0.2
		},
		"adapter": {
			"ragie_url": "https://ragie.example",
			"anthropic_url": "https://anthropic.example",
			"request_timeout": "45s",
			"retry_count": 1
		},
		"storage": {
			"data_dir": "/var/data",
			"users_file": "users.json",
			"registry_dsn": "registry.db"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "claude-3-sonnet-20240229", cfg.Chat.Model)
	assert.Equal(t, 512, cfg.Chat.MaxTokens)
	assert.Equal(t, 0.2, cfg.Chat.Temperature)

	assert.Equal(t, "https://ragie.example", cfg.Adapter.RagieBaseURL)
	assert.Equal(t, "https://anthropic.example", cfg.Adapter.AnthropicBaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 1, cfg.Adapter.RetryCount)

	assert.Equal(t, "/var/data", cfg.Storage.DataDir)
	assert.Equal(t, "users.json", cfg.Storage.UsersFile)
	assert.Equal(t, "registry.db", cfg.Storage.RegistryDSN)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations may also arrive as nanosecond numbers.
	jsonBody := `{"adapter": {"request_timeout": 1000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
