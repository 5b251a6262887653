package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gestoria-mays/enrique/models"
	"github.com/go-resty/resty/v2"
)

const (
	anthropicMessagesPath = "/v1/messages"

	// anthropicAPIVersion is the wire version pinned on every call.
	anthropicAPIVersion = "2023-06-01"
)

// AnthropicClientConfig holds the settings of the chat completion client.
type AnthropicClientConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	RetryCount  int
}

// anthropicClient is the HTTP implementation of [ChatClient]. Generation
// parameters are fixed at construction; every call sends the full message
// list plus the system prompt and extracts the reply text with an ordered
// shape fallback.
type anthropicClient struct {
	client      *resty.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewAnthropicClient constructs a [ChatClient] from cfg, filling unset fields
// with safe defaults.
func NewAnthropicClient(cfg AnthropicClientConfig) ChatClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-3-sonnet-20240229"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("anthropic-version", anthropicAPIVersion).
		SetRetryCount(cfg.RetryCount).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &anthropicClient{
		client:      cli,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Generate sends one chat turn: the prior history plus the new user message,
// conditioned on systemPrompt. The passed-in history is left untouched; the
// caller appends both turns to the conversation after a successful call.
func (c *anthropicClient) Generate(ctx context.Context, systemPrompt string, history []models.Message, query string) (string, error) {
	messages := make([]models.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, models.Message{Role: models.RoleUser, Content: query})

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChatRequest{
			Model:       c.model,
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
			System:      systemPrompt,
			Messages:    messages,
		}).
		Post(anthropicMessagesPath)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", &ChatError{Status: resp.StatusCode(), Reason: remoteReason(resp)}
	}

	var payload models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	return extractText(payload)
}

// extractText normalizes the shape variability of chat replies into a single
// string. Different client/API versions carry the generated text in
// different fields, so the probe order is fixed:
//  1. the content block array, joining the text of every block;
//  2. the legacy top-level completion string;
//  3. the top-level text string.
//
// When none carries text the reply is unusable and
// [ErrUnexpectedResponseShape] is returned.
func extractText(payload models.ChatResponse) (string, error) {
	if len(payload.Content) > 0 {
		parts := make([]string, 0, len(payload.Content))
		for _, block := range payload.Content {
			if block.Text != "" {
				parts = append(parts, block.Text)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, " "), nil
		}
	}

	if payload.Completion != "" {
		return payload.Completion, nil
	}

	if payload.Text != "" {
		return payload.Text, nil
	}

	return "", ErrUnexpectedResponseShape
}
