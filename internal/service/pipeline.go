package service

import (
	"context"
	"fmt"

	"github.com/gestoria-mays/enrique/internal/adapter"
	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/internal/store"
	"github.com/gestoria-mays/enrique/models"
)

// pipelineService is the concrete implementation of [PipelineService]. It is
// a thin orchestrator: chunking, ranking and generation are fully delegated
// to the remote services; this type only sequences the calls.
type pipelineService struct {
	retrieval adapter.RetrievalClient
	chat      adapter.ChatClient
	registry  store.DocumentRegistry
	logger    *logger.Logger
}

// NewPipelineService constructs a [PipelineService] from its collaborators.
func NewPipelineService(
	retrieval adapter.RetrievalClient,
	chat adapter.ChatClient,
	registry store.DocumentRegistry,
	logger *logger.Logger,
) PipelineService {
	return &pipelineService{
		retrieval: retrieval,
		chat:      chat,
		registry:  registry,
		logger:    logger,
	}
}

// Answer produces the assistant reply for one retrieval-augmented chat turn.
//
// Sequence: retrieve snippets for query, compose the system prompt, generate
// the reply against history. Answer has no side effects on the conversation;
// appending and persisting both turns stays with the caller, whose update
// loop is the single writer of the session state.
//
// An empty snippet list is not an error: the composed prompt then instructs
// the model to answer with the fixed deflection.
func (p *pipelineService) Answer(ctx context.Context, history []models.Message, query string) (string, error) {
	log := logger.FromContext(ctx)

	snippets, err := p.retrieval.Retrieve(ctx, query)
	if err != nil {
		log.Err(err).Msg("snippet retrieval failed")
		return "", fmt.Errorf("snippet retrieval failed: %w", err)
	}
	log.Debug().Int("snippets", len(snippets)).Msg("snippets retrieved")

	systemPrompt := ComposeSystemPrompt(snippets)

	reply, err := p.chat.Generate(ctx, systemPrompt, history, query)
	if err != nil {
		log.Err(err).Msg("reply generation failed")
		return "", fmt.Errorf("reply generation failed: %w", err)
	}

	return reply, nil
}

// UploadDocument submits a document for remote indexing and registers the
// returned handle in the local registry so it can be listed later.
func (p *pipelineService) UploadDocument(ctx context.Context, req models.UploadRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	doc, err := p.retrieval.Upload(ctx, req)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("document upload failed")
		return models.Document{}, err
	}

	registered, err := p.registry.AddDocument(ctx, doc)
	if err != nil {
		// The remote upload already succeeded; losing the local handle is
		// worth surfacing but must not look like a failed upload.
		log.Err(err).Str("remote_id", doc.RemoteID).Msg("uploaded document could not be registered locally")
		return doc, fmt.Errorf("uploaded document could not be registered locally: %w", err)
	}

	return registered, nil
}

// ListDocuments returns all locally registered document handles.
func (p *pipelineService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return p.registry.ListDocuments(ctx)
}
