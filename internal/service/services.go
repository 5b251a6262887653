package service

import (
	"github.com/gestoria-mays/enrique/internal/adapter"
	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/internal/store"
)

// Services bundles every application service behind one handle for wiring.
type Services struct {
	SiteGate
	AuthService
	ConversationService
	PipelineService
}

// NewServices wires the services to storage and the remote clients. An empty
// sitePassword disables the site gate.
func NewServices(
	storages *store.Storages,
	retrieval adapter.RetrievalClient,
	chat adapter.ChatClient,
	sitePassword string,
	logger *logger.Logger,
) *Services {
	return &Services{
		SiteGate:            NewSiteGate(sitePassword),
		AuthService:         NewAuthService(storages.UserRepository, logger),
		ConversationService: NewConversationService(storages.UserRepository, logger),
		PipelineService:     NewPipelineService(retrieval, chat, storages.DocumentRegistry, logger),
	}
}
