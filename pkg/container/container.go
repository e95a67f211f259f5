package container

import (
	"fmt"

	"bookstore-contracts/internal/config"
	"bookstore-contracts/internal/domains/catalog/model"
	catalogService "bookstore-contracts/internal/domains/catalog/service"
	"bookstore-contracts/pkg/logger"

	"github.com/rs/zerolog/log"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
// The catalog it holds is the only registry owner in the process; callers
// that need isolation (tests) build their own Container or model.Catalog.
type Container struct {
	Config *config.Config

	// Registry owner for authors, books and contracts
	Catalog *model.Catalog

	CatalogService catalogService.ServiceInterface
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads config from the environment and builds the graph.
// Order matters: config, logger, catalog, services.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewContainerWithConfig(cfg)
}

// NewContainerWithConfig builds the graph from an already loaded config
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	level, err := cfg.Log.ParseLevel()
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	logger.Init(cfg.App.Environment, level)

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: REGISTRIES
	// ========================================
	c.Catalog = model.NewCatalog()

	// ========================================
	// STEP 2: SERVICES
	// ========================================
	c.CatalogService = catalogService.NewCatalogService(c.Catalog)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("container initialized")
	return c, nil
}
