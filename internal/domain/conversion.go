package domain

import (
	"time"

	"github.com/google/uuid"
)

type ConversionStatus string

const (
	ConversionSucceeded ConversionStatus = "succeeded"
	ConversionFailed    ConversionStatus = "failed"
)

// Conversion is a history entry for one infix-to-postfix conversion attempt.
type Conversion struct {
	ID        uuid.UUID        `json:"id"`
	Infix     string           `json:"infix"`
	Postfix   string           `json:"postfix,omitempty"`
	Tokens    []string         `json:"tokens,omitempty"`
	Status    ConversionStatus `json:"status"`
	Failure   *Failure         `json:"failure,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Failure describes why a conversion was rejected.
type Failure struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Position int    `json:"position"`
}

func (c *Conversion) Succeeded() bool {
	return c.Status == ConversionSucceeded
}

// Normalize fills the id and creation time of a record about to be stored.
func (c *Conversion) Normalize(now time.Time) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.Status == "" {
		if c.Failure != nil {
			c.Status = ConversionFailed
		} else {
			c.Status = ConversionSucceeded
		}
	}
}
