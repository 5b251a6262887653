package models

import "time"

// User represents an account entity stored in the credential file.
// It contains identity attributes, the password hash and the user's
// conversation history. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// Username is the unique, case-sensitive key of the account.
	// It is the map key in the store file and is not serialized inside
	// the record itself.
	Username string `json:"-"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext. It is immutable once
	// set at registration; there is no change-password flow.
	PasswordHash string `json:"password"`

	// Conversations maps a conversation name to its ordered message
	// history. The whole mapping is replaced on every save.
	Conversations map[string]Conversation `json:"conversations"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at,omitzero"`
}
