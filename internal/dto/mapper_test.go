package dto

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/DjordjeVuckovic/rpn/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConversion(t *testing.T) {
	now := time.Now()

	t.Run("succeeded", func(t *testing.T) {
		c := domain.Conversion{
			ID:        uuid.New(),
			Infix:     "A+B",
			Postfix:   "AB+",
			Tokens:    []string{"A", "B", "+"},
			Status:    domain.ConversionSucceeded,
			CreatedAt: now,
		}
		got := FromConversion(c)
		assert.Equal(t, c.ID, got.ID)
		assert.Equal(t, "succeeded", got.Status)
		assert.Nil(t, got.Position)
		assert.Empty(t, got.Kind)
	})

	t.Run("failed at position zero", func(t *testing.T) {
		c := domain.Conversion{
			Infix:   ")",
			Status:  domain.ConversionFailed,
			Failure: &domain.Failure{Kind: "unbalanced_parentheses", Message: "unbalanced", Position: 0},
		}
		got := FromConversion(c)
		require.NotNil(t, got.Position)
		assert.Equal(t, 0, *got.Position)
		assert.Equal(t, "unbalanced_parentheses", got.Kind)
		assert.Equal(t, "unbalanced", got.Error)
	})
}

func TestFromConversionPage(t *testing.T) {
	res := pagination.NewOffsetResult([]domain.Conversion{{Infix: "A"}, {Infix: "B"}}, 5, 1, 2)
	page := FromConversionPage(res)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.True(t, page.HasMore)
}
