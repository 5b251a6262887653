package adapter

import (
	"context"

	"github.com/gestoria-mays/enrique/models"
)

// RetrievalClient wraps the remote document retrieval service.
type RetrievalClient interface {
	// Upload submits a document for indexing and returns its handle.
	// Exactly one of req.URL or req.Content must be set; an empty req.Name
	// defaults to the last path segment of the URL.
	Upload(ctx context.Context, req models.UploadRequest) (models.Document, error)

	// Retrieve returns the ranked snippet texts relevant to query. An empty
	// slice is a valid outcome distinct from an error.
	Retrieve(ctx context.Context, query string) ([]string, error)
}

// ChatClient wraps the remote chat completion service.
type ChatClient interface {
	// Generate sends the system prompt, the prior history and the new user
	// message, and returns the generated assistant text. The history slice
	// is never mutated; appending the reply is the caller's job.
	Generate(ctx context.Context, systemPrompt string, history []models.Message, query string) (string, error)
}
