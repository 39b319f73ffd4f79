package storage

import (
	"context"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/DjordjeVuckovic/rpn/pkg/pagination"
	"github.com/google/uuid"
)

type Reader interface {
	// Get returns ErrNotFound when no conversion has the given id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error)
	// List returns conversions newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Conversion], error)
}

// Store is the conversion history: everything written through it can be read back.
type Store interface {
	Storer
	Reader
	Close()
}
