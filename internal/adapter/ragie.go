package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gestoria-mays/enrique/models"
	"github.com/go-resty/resty/v2"
)

const (
	ragieUploadPath    = "/documents/url"
	ragieRetrievalPath = "/retrievals"
)

// RagieClientConfig holds the settings of the retrieval service client.
type RagieClientConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RetryCount int
}

// ragieClient is the HTTP implementation of [RetrievalClient] backed by the
// Ragie API. Every call carries bearer-token auth; server errors and
// transport failures are retried a bounded number of times, 4xx never.
type ragieClient struct {
	client *resty.Client
}

// NewRagieClient constructs a [RetrievalClient] from cfg, filling unset
// fields with safe defaults.
func NewRagieClient(cfg RagieClientConfig) RetrievalClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.ragie.ai"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetRetryCount(cfg.RetryCount).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &ragieClient{client: cli}
}

// Upload submits a document for indexing.
//
// The request name defaults to the last path segment of the source URL, or
// "document" when that is empty too. A non-2xx response yields an
// [*UploadError] carrying the remote status and reason.
func (c *ragieClient) Upload(ctx context.Context, req models.UploadRequest) (models.Document, error) {
	if req.Name == "" {
		req.Name = documentNameFromURL(req.URL)
	}
	if req.Mode == "" {
		req.Mode = models.ModeFast
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(ragieUploadPath)
	if err != nil {
		return models.Document{}, fmt.Errorf("upload request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.Document{}, &UploadError{Status: resp.StatusCode(), Reason: remoteReason(resp)}
	}

	var uploaded models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &uploaded); err != nil {
		return models.Document{}, fmt.Errorf("decode upload response: %w", err)
	}

	return models.Document{
		RemoteID: uploaded.ID,
		Name:     req.Name,
		URL:      req.URL,
		Mode:     req.Mode,
		Status:   uploaded.Status,
	}, nil
}

// Retrieve returns the ordered snippet texts for query from the ranked-chunk
// array of the response. No matches is a valid empty result; a non-2xx
// response yields a [*RetrievalError].
func (c *ragieClient) Retrieve(ctx context.Context, query string) ([]string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RetrievalRequest{Query: query}).
		Post(ragieRetrievalPath)
	if err != nil {
		return nil, fmt.Errorf("retrieval request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, &RetrievalError{Status: resp.StatusCode(), Reason: remoteReason(resp)}
	}

	var payload models.RetrievalResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("decode retrieval response: %w", err)
	}

	snippets := make([]string, 0, len(payload.ScoredChunks))
	for _, chunk := range payload.ScoredChunks {
		snippets = append(snippets, chunk.Text)
	}

	return snippets, nil
}

// remoteReason extracts a human-readable failure reason from a non-success
// response, falling back to the standard status text.
func remoteReason(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}

// documentNameFromURL mirrors the upload default: the last path segment of
// the source URL, or "document" when the URL has none.
func documentNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "document"
	}

	segments := strings.Split(parsed.Path, "/")
	name := segments[len(segments)-1]
	if name == "" {
		return "document"
	}
	return name
}
