package service

import (
	"context"

	"github.com/gestoria-mays/enrique/models"
)

// AuthService handles user registration and credential verification against
// the flat-file credential store.
type AuthService interface {
	// Register creates a new account with a bcrypt hash of password.
	// Returns ErrInvalidDataProvided on empty input and
	// store.ErrUsernameAlreadyExists on a taken username.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Login verifies the credentials and opens a Session. Unknown usernames
	// and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*Session, error)
}

// ConversationService manages the named conversations of a session and
// persists every mutation immediately.
type ConversationService interface {
	// Create adds a new empty conversation and makes it active.
	Create(ctx context.Context, session *Session, name string) (models.Conversation, error)

	// Select makes an existing conversation active.
	Select(ctx context.Context, session *Session, name string) (models.Conversation, error)

	// Append adds one turn to the active conversation and saves the store.
	Append(ctx context.Context, session *Session, role models.Role, content string) error
}

// PipelineService orchestrates the remote half of a retrieval-augmented chat
// turn and the document upload flow.
type PipelineService interface {
	// Answer produces the assistant reply for one chat turn: snippets are
	// retrieved for query, the system prompt is composed and the reply is
	// generated against the given history. Answer never touches the Session;
	// the caller appends and persists both turns itself.
	Answer(ctx context.Context, history []models.Message, query string) (string, error)

	// UploadDocument submits a document for indexing and registers its
	// handle locally.
	UploadDocument(ctx context.Context, req models.UploadRequest) (models.Document, error)

	// ListDocuments returns all locally registered document handles.
	ListDocuments(ctx context.Context) ([]models.Document, error)
}
