package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults, merged in last so any explicit source wins.
const (
	defaultModel       = "claude-3-sonnet-20240229"
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7

	defaultRagieBaseURL     = "https://api.ragie.ai"
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	defaultRequestTimeout   = 30 * time.Second
	defaultRetryCount       = 2

	defaultDataDir     = "."
	defaultUsersFile   = "user_data.json"
	defaultRegistryDSN = "documents.db"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Chat: Chat{
			Model:       defaultModel,
			MaxTokens:   defaultMaxTokens,
			Temperature: defaultTemperature,
		},
		Adapter: Adapter{
			RagieBaseURL:     defaultRagieBaseURL,
			AnthropicBaseURL: defaultAnthropicBaseURL,
			RequestTimeout:   defaultRequestTimeout,
			RetryCount:       defaultRetryCount,
		},
		Storage: Storage{
			DataDir:     defaultDataDir,
			UsersFile:   defaultUsersFile,
			RegistryDSN: defaultRegistryDSN,
		},
	})

	return b
}
