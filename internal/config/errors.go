package config

import "errors"

// Sentinel errors returned by config validation. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoRagieAPIKey is returned when the retrieval service bearer token
	// is missing from all configuration sources.
	ErrNoRagieAPIKey = errors.New("ragie api key is not set")

	// ErrNoAnthropicAPIKey is returned when the chat service key is missing
	// from all configuration sources.
	ErrNoAnthropicAPIKey = errors.New("anthropic api key is not set")

	// ErrInvalidMaxTokens is returned when the generation token budget is
	// zero or negative after merging all sources.
	ErrInvalidMaxTokens = errors.New("max tokens must be positive")
)
