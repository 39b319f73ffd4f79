package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversion_Normalize(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fills missing fields", func(t *testing.T) {
		c := Conversion{Infix: "A+B", Postfix: "AB+"}
		c.Normalize(now)

		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, now, c.CreatedAt)
		assert.Equal(t, ConversionSucceeded, c.Status)
		assert.True(t, c.Succeeded())
	})

	t.Run("failure implies failed status", func(t *testing.T) {
		c := Conversion{Infix: "(A", Failure: &Failure{Kind: "unbalanced_parentheses"}}
		c.Normalize(now)

		assert.Equal(t, ConversionFailed, c.Status)
		assert.False(t, c.Succeeded())
	})

	t.Run("keeps existing values", func(t *testing.T) {
		id := uuid.New()
		created := now.Add(-time.Hour)
		c := Conversion{ID: id, CreatedAt: created, Status: ConversionFailed}
		c.Normalize(now)

		assert.Equal(t, id, c.ID)
		assert.Equal(t, created, c.CreatedAt)
		assert.Equal(t, ConversionFailed, c.Status)
	})
}
