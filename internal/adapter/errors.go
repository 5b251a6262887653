package adapter

import (
	"errors"
	"fmt"
)

// ErrUnexpectedResponseShape is returned when the chat service reply carries
// the generated text in none of the known fields. This is the terminal error
// of the extractText fallback chain.
var ErrUnexpectedResponseShape = errors.New("unexpected chat response shape")

// UploadError reports a non-success HTTP status from the document upload
// endpoint. Status and Reason carry the remote response verbatim.
type UploadError struct {
	Status int
	Reason string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("document upload failed: %d %s", e.Status, e.Reason)
}

// RetrievalError reports a non-success HTTP status from the retrieval
// endpoint. An empty result set is NOT a RetrievalError; only transport and
// remote failures are.
type RetrievalError struct {
	Status int
	Reason string
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed: %d %s", e.Status, e.Reason)
}

// ChatError reports a non-success HTTP status from the chat completion
// endpoint.
type ChatError struct {
	Status int
	Reason string
}

func (e *ChatError) Error() string {
	return fmt.Sprintf("chat completion failed: %d %s", e.Status, e.Reason)
}
