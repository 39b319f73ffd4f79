package es

import (
	"context"

	"github.com/DjordjeVuckovic/rpn/internal/storage"
)

// Store is the Elasticsearch backed conversion history.
type Store struct {
	*Storer
	*Reader
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	storer, err := NewStorer(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Store{
		Storer: storer,
		Reader: &Reader{client: storer.client, indexName: storer.indexName},
	}, nil
}

// Healthy reports whether the cluster answers a ping.
func (s *Store) Healthy(ctx context.Context) bool {
	ok, err := s.Storer.client.Ping().Do(ctx)
	return err == nil && ok
}

func (s *Store) Close() {}

var _ storage.Store = (*Store)(nil)
