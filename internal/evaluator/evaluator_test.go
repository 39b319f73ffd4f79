package evaluator

import (
	"testing"

	"github.com/DjordjeVuckovic/rpn/internal/postfix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateInfix(t *testing.T) {
	vars := Vars{"A": 6, "B": 2, "C": 3, "D": 4}

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "reference example", input: "A*(B+C)/D", expected: 7.5},
		{name: "left associative subtraction", input: "A-B-C", expected: 1},
		{name: "left associative division", input: "A/B/C", expected: 1},
		{name: "precedence", input: "A+B*C", expected: 12},
		{name: "parentheses", input: "(A+B)*C", expected: 24},
		{name: "numeric literals", input: "12 + 30 / 10", expected: 15},
		{name: "mixed literals and variables", input: "2*A - D", expected: 8},
		{name: "single operand", input: "(42)", expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateInfix(tt.input, vars)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		vars    Vars
		wantErr error
	}{
		{name: "unknown variable", input: "A+B", vars: Vars{"A": 1}, wantErr: ErrUnknownVariable},
		{name: "division by zero", input: "A/(B-B)", vars: Vars{"A": 1, "B": 2}, wantErr: ErrDivisionByZero},
		{name: "adjacent operands", input: "A B", vars: Vars{"A": 1, "B": 2}, wantErr: ErrMalformed},
		{name: "missing operand", input: "A+", vars: Vars{"A": 1}, wantErr: ErrStackUnderflow},
		{name: "empty expression", input: "", wantErr: ErrMalformed},
		{name: "digit led identifier", input: "2x+1", wantErr: ErrInvalidOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateInfix(tt.input, tt.vars)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEvaluate_ErrorPosition(t *testing.T) {
	p, err := postfix.Convert("A + missing")
	require.NoError(t, err)

	_, err = Evaluate(p, Vars{"A": 1})

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, 4, evalErr.Pos)
	assert.Equal(t, "missing", evalErr.Token)
	assert.Contains(t, err.Error(), "unknown variable")
}

func TestEvaluateInfix_ConversionError(t *testing.T) {
	_, err := EvaluateInfix("(A+B", Vars{"A": 1, "B": 2})
	assert.ErrorIs(t, err, postfix.ErrUnbalancedParentheses)
}
