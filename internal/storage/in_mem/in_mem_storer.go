package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/DjordjeVuckovic/rpn/internal/storage"
	"github.com/DjordjeVuckovic/rpn/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Conversion
	order       []uuid.UUID
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Conversion),
	}
}

func (s *InMemStorer) Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error) {
	conversion.Normalize(time.Now())

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.put(conversion)
	slog.Debug("Saved conversion to in-memory storage", "id", conversion.ID, "status", conversion.Status)
	return conversion.ID, nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, conversions []domain.Conversion) error {
	now := time.Now()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, conversion := range conversions {
		conversion.Normalize(now)
		s.put(conversion)
	}
	slog.Debug("Saved conversions to in-memory storage", "count", len(conversions))

	return nil
}

func (s *InMemStorer) put(conversion domain.Conversion) {
	if _, exists := s.storage[conversion.ID]; !exists {
		s.order = append(s.order, conversion.ID)
	}
	s.storage[conversion.ID] = conversion
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	conversion, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &conversion, nil
}

func (s *InMemStorer) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Conversion], error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	all := make([]domain.Conversion, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		all = append(all, s.storage[s.order[i]])
	}
	s.storageLock.RUnlock()

	// insertion order breaks ties between equal timestamps
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	offset := page.Offset()
	items := make([]domain.Conversion, 0)
	if offset < len(all) {
		end := min(offset+page.Size, len(all))
		items = all[offset:end]
	}

	return pagination.NewOffsetResult(items, int64(len(all)), page.Page, page.Size), nil
}

func (s *InMemStorer) Close() {}

var _ storage.Store = (*InMemStorer)(nil)
