package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/DjordjeVuckovic/rpn/internal/storage"
	"github.com/DjordjeVuckovic/rpn/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectConversions = `
	SELECT id, infix, postfix, tokens, status, failure_kind, failure_message, failure_position, created_at
	FROM conversions
`

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) *Reader {
	return &Reader{db: pool.GetConn()}
}

func (r *Reader) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	row := r.db.QueryRow(ctx, selectConversions+" WHERE id = $1", id)

	c, err := scanConversion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion %s: %w", id, err)
	}
	return c, nil
}

func (r *Reader) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Conversion], error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM conversions").Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count conversions: %w", err)
	}

	rows, err := r.db.Query(ctx,
		selectConversions+" ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2",
		page.Size, page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Conversion, 0, page.Size)
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func scanConversion(row pgx.Row) (*domain.Conversion, error) {
	var (
		c        domain.Conversion
		status   string
		kind     *string
		message  *string
		position *int32
	)

	err := row.Scan(&c.ID, &c.Infix, &c.Postfix, &c.Tokens, &status, &kind, &message, &position, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	c.Status = domain.ConversionStatus(status)
	if kind != nil {
		c.Failure = &domain.Failure{Kind: *kind}
		if message != nil {
			c.Failure.Message = *message
		}
		if position != nil {
			c.Failure.Position = int(*position)
		}
	}
	return &c, nil
}
