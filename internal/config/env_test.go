package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"RAGIE_API_KEY":     "ragie_secret",
		"ANTHROPIC_API_KEY": "anthropic_secret",

		"CHAT_MODEL":       "claude-3-sonnet-20240229",
		"CHAT_MAX_TOKENS":  "2048",
		"CHAT_TEMPERATURE": "0.5",

		"ADAPTER_RAGIE_URL":       "https://ragie.example",
		"ADAPTER_ANTHROPIC_URL":   "https://anthropic.example",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_RETRY_COUNT":     "3",

		"STORAGE_DATA_DIR":     "/var/data",
		"STORAGE_USERS_FILE":   "users.json",
		"STORAGE_REGISTRY_DSN": "registry.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "ragie_secret", cfg.Secrets.RagieAPIKey)
	assert.Equal(t, "anthropic_secret", cfg.Secrets.AnthropicAPIKey)

	assert.Equal(t, "claude-3-sonnet-20240229", cfg.Chat.Model)
	assert.Equal(t, 2048, cfg.Chat.MaxTokens)
	assert.Equal(t, 0.5, cfg.Chat.Temperature)

	assert.Equal(t, "https://ragie.example", cfg.Adapter.RagieBaseURL)
	assert.Equal(t, "https://anthropic.example", cfg.Adapter.AnthropicBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.RetryCount)

	assert.Equal(t, "/var/data", cfg.Storage.DataDir)
	assert.Equal(t, "users.json", cfg.Storage.UsersFile)
	assert.Equal(t, "registry.db", cfg.Storage.RegistryDSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"RAGIE_API_KEY":    "ragie_secret",
		"STORAGE_DATA_DIR": "/var/data",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "ragie_secret", cfg.Secrets.RagieAPIKey)
	assert.Empty(t, cfg.Secrets.AnthropicAPIKey)

	assert.Empty(t, cfg.Chat.Model)
	assert.Zero(t, cfg.Chat.MaxTokens)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/data", cfg.Storage.DataDir)
	assert.Empty(t, cfg.Storage.UsersFile)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CHAT_MAX_TOKENS": "not-a-number",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// setEnvVars sets the given environment variables for the duration of the
// test; t.Setenv restores prior values automatically.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
