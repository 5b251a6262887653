package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gestoria-mays/enrique/internal/config"
	"github.com/gestoria-mays/enrique/internal/logger"
)

// Storages aggregates every persistence backend the application uses.
type Storages struct {
	UserRepository   UserRepository
	DocumentRegistry DocumentRegistry
}

// NewStorages wires both backends from the storage configuration. File paths
// resolve relative to cfg.DataDir; a ":memory:" registry DSN is passed
// through unchanged.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	usersPath := cfg.UsersFile
	if !filepath.IsAbs(usersPath) {
		usersPath = filepath.Join(cfg.DataDir, cfg.UsersFile)
	}

	registryDSN := cfg.RegistryDSN
	if registryDSN != ":memory:" && !filepath.IsAbs(registryDSN) {
		registryDSN = filepath.Join(cfg.DataDir, cfg.RegistryDSN)
	}

	db, err := NewConnectSQLite(ctx, registryDSN, log)
	if err != nil {
		return nil, fmt.Errorf("connect document registry: %w", err)
	}

	return &Storages{
		UserRepository:   NewFileUserRepository(usersPath, log),
		DocumentRegistry: NewDocumentRegistry(db, log),
	}, nil
}
