package store

import (
	"context"

	"github.com/gestoria-mays/enrique/models"
)

// UserRepository is the data-access layer for the flat-file credential store.
// All operations run load-mutate-save cycles against the single store file and
// are serialized by an in-process single-writer lock. Multi-process writers
// are out of scope (documented gap).
type UserRepository interface {
	// CreateUser persists a new user record. The PasswordHash must already
	// be a hash. Returns ErrUsernameAlreadyExists on duplicate usernames.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the stored record for the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// SaveConversations replaces the whole conversation mapping of the given
	// user and persists the store immediately.
	SaveConversations(ctx context.Context, username string, conversations map[string]models.Conversation) error

	// LoadAll returns the full store mapping. Missing file yields an empty
	// mapping; corrupt content resets the store to empty (fail-open).
	LoadAll(ctx context.Context) (map[string]models.User, error)
}

// DocumentRegistry records handles of documents uploaded to the retrieval
// service so they can be listed later.
type DocumentRegistry interface {
	AddDocument(ctx context.Context, doc models.Document) (models.Document, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
	Close() error
}
