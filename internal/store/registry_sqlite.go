package store

import (
	"context"
	"fmt"
	"time"

	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/models"
	"github.com/google/uuid"
)

// documentRegistry is the SQLite-backed implementation of [DocumentRegistry].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, interaction-level tracing of database operations.
type documentRegistry struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRegistry constructs a [DocumentRegistry] backed by the provided
// database connection and logger.
func NewDocumentRegistry(db *DB, logger *logger.Logger) DocumentRegistry {
	logger.Debug().Msg("creating document registry")
	return &documentRegistry{
		DB:     db,
		logger: logger,
	}
}

// AddDocument registers the handle of an uploaded document and returns it
// with LocalID and CreatedAt assigned.
//
// Error handling:
//   - zero rows affected → [ErrDocumentNotSaved].
//   - any driver-level error → wrapped.
func (r *documentRegistry) AddDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	doc.LocalID = uuid.NewString()
	doc.CreatedAt = time.Now().UTC()

	res, err := r.DB.ExecContext(ctx, saveSingleDocument,
		doc.LocalID,
		doc.RemoteID,
		doc.Name,
		doc.URL,
		string(doc.Mode),
		doc.Status,
		doc.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "documentRegistry.AddDocument").
			Str("name", doc.Name).
			Msg("failed to execute insert for document handle")
		return models.Document{}, fmt.Errorf("failed to save document handle (name=%s): %w", doc.Name, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.Document{}, ErrDocumentNotSaved
	}

	return doc, nil
}

// ListDocuments returns all registered document handles ordered by
// registration time.
func (r *documentRegistry) ListDocuments(ctx context.Context) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllDocuments)
	if err != nil {
		log.Err(err).
			Str("func", "documentRegistry.ListDocuments").
			Msg("failed to execute query for all documents")
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		var mode string
		if err = rows.Scan(
			&doc.LocalID,
			&doc.RemoteID,
			&doc.Name,
			&doc.URL,
			&mode,
			&doc.Status,
			&doc.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "documentRegistry.ListDocuments").
				Msg("failed to scan document row")
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		doc.Mode = models.IndexingMode(mode)
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}

	return docs, nil
}

// Close releases the underlying database handle.
func (r *documentRegistry) Close() error {
	return r.DB.DB.Close()
}
