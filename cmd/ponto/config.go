package main

import (
	"fmt"
	"io"
	"os"

	"ponto/internal/config"
	"ponto/internal/store"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// EnvironmentVar selects the storage backend
const EnvironmentVar = "PONTO_ENV"

// RepositoryFactory creates the key-value backend based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateKV returns the backend and a closer releasing it
func (rf *RepositoryFactory) CreateKV(cfg *config.Config) (store.KV, io.Closer, error) {
	switch rf.env {
	case Testing:
		return store.NewMemoryKV(), nil, nil
	case Development:
		dev := *cfg
		dev.Storage.Dir = "."
		return rf.openSQLite(&dev)
	default:
		return rf.openSQLite(cfg)
	}
}

func (rf *RepositoryFactory) openSQLite(cfg *config.Config) (store.KV, io.Closer, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s database: %w", rf.env, err)
	}
	return repo, repo, nil
}

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	switch Environment(os.Getenv(EnvironmentVar)) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}
