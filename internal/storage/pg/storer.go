package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var conversionColumns = []string{
	"id", "infix", "postfix", "tokens", "status",
	"failure_kind", "failure_message", "failure_position", "created_at",
}

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) *Storer {
	return &Storer{db: pool.GetConn()}
}

func (s *Storer) Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error) {
	conversion.Normalize(time.Now())

	cmd := `
        INSERT INTO conversions (id, infix, postfix, tokens, status, failure_kind, failure_message, failure_position, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(ctx, cmd, toRow(conversion)...).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert conversion: %w", err)
	}

	return id, nil
}

func (s *Storer) SaveBulk(ctx context.Context, conversions []domain.Conversion) error {
	if len(conversions) == 0 {
		return nil
	}

	rows := make([][]interface{}, len(conversions))
	now := time.Now()

	for i, c := range conversions {
		c.Normalize(now)
		rows[i] = toRow(c)
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"conversions"},
		conversionColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert conversions: %w", err)
	}
	return nil
}

func toRow(c domain.Conversion) []interface{} {
	tokens := c.Tokens
	if tokens == nil {
		tokens = []string{}
	}

	var kind, message *string
	var position *int32
	if c.Failure != nil {
		pos := int32(c.Failure.Position)
		kind, message, position = &c.Failure.Kind, &c.Failure.Message, &pos
	}

	return []interface{}{
		c.ID,
		c.Infix,
		c.Postfix,
		tokens,
		string(c.Status),
		kind,
		message,
		position,
		c.CreatedAt,
	}
}
