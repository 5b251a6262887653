package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing. Secrets are deliberately absent: API keys
// come only from the environment's secret mechanism, never from a config file
// that may end up in version control.
type StructuredJSONConfig struct {
	Chat struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
	} `json:"chat,omitempty"`

	Adapter struct {
		RagieBaseURL     string   `json:"ragie_url"`
		AnthropicBaseURL string   `json:"anthropic_url"`
		RequestTimeout   Duration `json:"request_timeout"`
		RetryCount       int      `json:"retry_count"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DataDir     string `json:"data_dir"`
		UsersFile   string `json:"users_file"`
		RegistryDSN string `json:"registry_dsn"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Chat: Chat{
			Model:       jsonCfg.Chat.Model,
			MaxTokens:   jsonCfg.Chat.MaxTokens,
			Temperature: jsonCfg.Chat.Temperature,
		},
		Adapter: Adapter{
			RagieBaseURL:     jsonCfg.Adapter.RagieBaseURL,
			AnthropicBaseURL: jsonCfg.Adapter.AnthropicBaseURL,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:       jsonCfg.Adapter.RetryCount,
		},
		Storage: Storage{
			DataDir:     jsonCfg.Storage.DataDir,
			UsersFile:   jsonCfg.Storage.UsersFile,
			RegistryDSN: jsonCfg.Storage.RegistryDSN,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
