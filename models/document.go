package models

import "time"

// IndexingMode selects the trade-off the retrieval service makes between
// upload latency and retrieval quality.
type IndexingMode string

const (
	// ModeFast indexes the document quickly with baseline quality.
	ModeFast IndexingMode = "fast"

	// ModeAccurate indexes the document slowly with higher quality.
	ModeAccurate IndexingMode = "accurate"
)

// Document is the local handle of a document uploaded to the retrieval
// service. The remote service owns the content; we only register the handle
// so uploads can be listed later.
type Document struct {
	// LocalID is the registry row identifier, assigned at registration time.
	LocalID string

	// RemoteID is the identifier returned by the retrieval service.
	// Empty when the upload response carried no id.
	RemoteID string

	// Name is the display name of the document. Defaults to the last path
	// segment of the source URL when not provided.
	Name string

	// URL is the source location the document was ingested from.
	// Empty for raw-content uploads.
	URL string

	// Mode is the indexing mode the document was uploaded with.
	Mode IndexingMode

	// Status is the last known remote indexing status, if reported.
	Status string

	// CreatedAt is the local registration timestamp.
	CreatedAt time.Time
}
