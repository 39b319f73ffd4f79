package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/rpn/internal/storage"
	"github.com/DjordjeVuckovic/rpn/internal/storage/es"
	"github.com/DjordjeVuckovic/rpn/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/rpn/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/rpn/pkg/server"
)

// NewStore creates the conversion history selected by cfg together with a
// health checker for its backend.
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, pkgserver.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		store, err := pg.NewStore(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL store: %w", err)
		}
		return store, store.HealthChecker(), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Elasticsearch store: %w", err)
		}
		return store, store, nil

	case storage.InMem:
		return in_mem.NewInMemStorer(), pkgserver.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
