package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error)
	SaveBulk(ctx context.Context, conversions []domain.Conversion) error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

var ErrNotFound = errors.New("conversion not found")
