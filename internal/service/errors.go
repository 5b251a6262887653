package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a username or password is
	// empty on registration or login.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidSitePassword is returned when the site-wide passphrase does
	// not match.
	ErrInvalidSitePassword = errors.New("invalid site password")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password. The two cases are deliberately indistinguishable to
	// the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmptyConversationName is returned when creating a conversation with
	// a blank name. The store is left untouched.
	ErrEmptyConversationName = errors.New("conversation name must not be empty")

	// ErrDuplicateConversationName is returned when the user already owns a
	// conversation with that name.
	ErrDuplicateConversationName = errors.New("conversation name already exists")

	// ErrConversationNotFound is returned when selecting a conversation the
	// user does not own.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrNoActiveConversation is returned when a chat turn is requested
	// before a conversation has been created or selected.
	ErrNoActiveConversation = errors.New("no active conversation")
)
