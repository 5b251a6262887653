package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d data directory for persistent files
//	-users-file credential store file name
//	-registry-dsn SQLite DSN of the document registry
//	-c/-config json file path with configs
//	-model chat model identifier
//	-max-tokens generation token budget
//	-temperature generation sampling temperature
//	-ragie-url retrieval service base URL
//	-anthropic-url chat service base URL
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-retry-count outbound request retry count
func ParseFlags() *StructuredConfig {
	var dataDir string
	var usersFile string
	var registryDSN string
	var jsonConfigPath string
	var model string
	var maxTokens int
	var temperature float64
	var ragieURL string
	var anthropicURL string
	var requestTimeout time.Duration
	var retryCount int

	flag.StringVar(&dataDir, "d", "", "Data directory for persistent files")
	flag.StringVar(&usersFile, "users-file", "", "Credential store file name")
	flag.StringVar(&registryDSN, "registry-dsn", "", "Document registry SQLite DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&model, "model", "", "Chat model identifier")
	flag.IntVar(&maxTokens, "max-tokens", 0, "Generation token budget")
	flag.Float64Var(&temperature, "temperature", 0, "Generation sampling temperature")
	flag.StringVar(&ragieURL, "ragie-url", "", "Retrieval service base URL")
	flag.StringVar(&anthropicURL, "anthropic-url", "", "Chat service base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	flag.IntVar(&retryCount, "retry-count", 0, "Outbound request retry count")

	flag.Parse()

	return &StructuredConfig{
		Chat: Chat{
			Model:       model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
		},
		Adapter: Adapter{
			RagieBaseURL:     ragieURL,
			AnthropicBaseURL: anthropicURL,
			RequestTimeout:   requestTimeout,
			RetryCount:       retryCount,
		},
		Storage: Storage{
			DataDir:     dataDir,
			UsersFile:   usersFile,
			RegistryDSN: registryDSN,
		},
		JSONFilePath: jsonConfigPath,
	}
}
