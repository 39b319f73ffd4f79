package es

import (
	"time"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/google/uuid"
)

// Document is the indexed form of a domain.Conversion.
type Document struct {
	ID              string    `json:"id"`
	Infix           string    `json:"infix"`
	Postfix         string    `json:"postfix"`
	Tokens          []string  `json:"tokens"`
	Status          string    `json:"status"`
	FailureKind     string    `json:"failure_kind,omitempty"`
	FailureMessage  string    `json:"failure_message,omitempty"`
	FailurePosition *int      `json:"failure_position,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	IndexedAt       time.Time `json:"indexed_at"`
}

func toDocument(c domain.Conversion) Document {
	doc := Document{
		ID:        c.ID.String(),
		Infix:     c.Infix,
		Postfix:   c.Postfix,
		Tokens:    c.Tokens,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		IndexedAt: time.Now(),
	}
	if c.Failure != nil {
		pos := c.Failure.Position
		doc.FailureKind = c.Failure.Kind
		doc.FailureMessage = c.Failure.Message
		doc.FailurePosition = &pos
	}
	return doc
}

func (d Document) toDomain() (domain.Conversion, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Conversion{}, err
	}

	c := domain.Conversion{
		ID:        id,
		Infix:     d.Infix,
		Postfix:   d.Postfix,
		Tokens:    d.Tokens,
		Status:    domain.ConversionStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
	if d.FailureKind != "" {
		c.Failure = &domain.Failure{Kind: d.FailureKind, Message: d.FailureMessage}
		if d.FailurePosition != nil {
			c.Failure.Position = *d.FailurePosition
		}
	}
	return c, nil
}
