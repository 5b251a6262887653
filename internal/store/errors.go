package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username is already present in
	// the credential store.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces no result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStoreCorrupt marks a credential store file whose content was not a
	// valid JSON object. The store recovers by resetting itself to empty, so
	// this error is logged rather than returned; it exists so the recovery
	// path has a stable identity in logs and tests.
	ErrStoreCorrupt = errors.New("credential store file is corrupt")

	// ErrDocumentNotSaved is returned when an INSERT into the document
	// registry completes without error but affects zero rows.
	ErrDocumentNotSaved = errors.New("document was not saved")
)
