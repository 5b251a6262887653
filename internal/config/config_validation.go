package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Both API keys are mandatory: without them every chat turn would fail at the
// first outbound call, so startup is the right place to refuse.
//
// Returns nil if the configuration is valid, or a joined error listing every
// violated invariant otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Secrets.RagieAPIKey == "" {
		errs = append(errs, ErrNoRagieAPIKey)
	}
	if cfg.Secrets.AnthropicAPIKey == "" {
		errs = append(errs, ErrNoAnthropicAPIKey)
	}
	if cfg.Chat.MaxTokens <= 0 {
		errs = append(errs, ErrInvalidMaxTokens)
	}

	return errors.Join(errs...)
}
