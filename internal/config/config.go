package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the enrique
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Secrets holds API credentials supplied by the environment's secret
	// mechanism. Tags carry no prefix so the variable names match what the
	// hosting environment already provides.
	Secrets Secrets

	// Chat holds chat-model parameters (model name, token budget,
	// sampling temperature).
	Chat Chat `envPrefix:"CHAT_"`

	// Adapter holds settings for outbound HTTP calls to the retrieval and
	// chat services.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the credential store file and the
	// local document registry.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Secrets holds the API credentials. Both values are mandatory and must be
// kept confidential; they are never logged or persisted.
type Secrets struct {
	// RagieAPIKey is the bearer token for the document retrieval service.
	// Env: RAGIE_API_KEY
	RagieAPIKey string `env:"RAGIE_API_KEY"`

	// AnthropicAPIKey is the key for the chat completion service.
	// Env: ANTHROPIC_API_KEY
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// AppPassword is the optional site-wide passphrase asked for before the
	// login screen. Empty disables the gate.
	// Env: APP_PASSWORD
	AppPassword string `env:"APP_PASSWORD"`
}

// Chat holds generation parameters for the chat completion service.
type Chat struct {
	// Model is the chat model identifier sent on every generation call.
	// Env: CHAT_MODEL
	Model string `env:"MODEL"`

	// MaxTokens caps the length of a generated reply.
	// Env: CHAT_MAX_TOKENS
	MaxTokens int `env:"MAX_TOKENS"`

	// Temperature is the sampling temperature for generation.
	// Env: CHAT_TEMPERATURE
	Temperature float64 `env:"TEMPERATURE"`
}

// Adapter holds settings for the outbound transport layer.
type Adapter struct {
	// RagieBaseURL is the base URL of the document retrieval service.
	// Env: ADAPTER_RAGIE_URL
	RagieBaseURL string `env:"RAGIE_URL"`

	// AnthropicBaseURL is the base URL of the chat completion service.
	// Env: ADAPTER_ANTHROPIC_URL
	AnthropicBaseURL string `env:"ANTHROPIC_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request, including retries (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a failed call is retried. Only server
	// errors and transport failures are retried, never 4xx responses.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage holds configuration for all persistence backends.
type Storage struct {
	// DataDir is the directory where all persistent files live. The users
	// file and the registry database resolve relative to it.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// UsersFile is the name of the JSON credential store file.
	// Env: STORAGE_USERS_FILE
	UsersFile string `env:"USERS_FILE"`

	// RegistryDSN is the SQLite DSN of the local document registry.
	// ":memory:" keeps the registry in memory.
	// Env: STORAGE_REGISTRY_DSN
	RegistryDSN string `env:"REGISTRY_DSN"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
