package postfix

import (
	"testing"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, err := Convert("(A+B)*C")
		require.NoError(t, err)

		rec := Record("(A+B)*C", p, nil)
		assert.Equal(t, domain.ConversionSucceeded, rec.Status)
		assert.Equal(t, "AB+C*", rec.Postfix)
		assert.Equal(t, []string{"A", "B", "+", "C", "*"}, rec.Tokens)
		assert.Nil(t, rec.Failure)
	})

	t.Run("failure keeps kind and position", func(t *testing.T) {
		p, err := Convert("A+B)")
		require.Error(t, err)

		rec := Record("A+B)", p, err)
		assert.Equal(t, domain.ConversionFailed, rec.Status)
		assert.Empty(t, rec.Postfix)
		require.NotNil(t, rec.Failure)
		assert.Equal(t, string(KindUnbalancedParentheses), rec.Failure.Kind)
		assert.Equal(t, 3, rec.Failure.Position)
		assert.Equal(t, err.Error(), rec.Failure.Message)
	})
}
