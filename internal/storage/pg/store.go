package pg

import (
	"context"

	"github.com/DjordjeVuckovic/rpn/internal/storage"
)

// Store is the PostgreSQL backed conversion history. It owns its pool.
type Store struct {
	*Storer
	*Reader
	pool *ConnectionPool
}

func NewStore(ctx context.Context, cfg PoolConfig) (*Store, error) {
	pool, err := NewConnectionPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Store{
		Storer: NewStorer(pool),
		Reader: NewReader(pool),
		pool:   pool,
	}, nil
}

func (s *Store) HealthChecker() *HealthChecker {
	return NewHealthChecker(s.pool)
}

func (s *Store) Close() {
	s.pool.Close()
}

var _ storage.Store = (*Store)(nil)
