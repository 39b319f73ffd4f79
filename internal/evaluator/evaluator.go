// Package evaluator computes the value of postfix expressions.
package evaluator

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/DjordjeVuckovic/rpn/internal/postfix"
	"github.com/DjordjeVuckovic/rpn/internal/token"
)

// Vars binds non-numeric operands to values.
type Vars map[string]float64

// Evaluate runs the standard postfix algorithm: operands are pushed, an
// operator pops two values, applies itself and pushes the result. Operands
// made only of digits are numeric literals, any other operand is looked up
// in vars.
func Evaluate(p postfix.Postfix, vars Vars) (float64, error) {
	values := make([]float64, 0, len(p))

	for _, tok := range p {
		switch {
		case tok.IsOperand():
			v, err := operandValue(tok, vars)
			if err != nil {
				return 0, err
			}
			values = append(values, v)
		case tok.IsOperator():
			if len(values) < 2 {
				return 0, &EvaluationError{Token: tok.Value, Pos: tok.Pos, Err: ErrStackUnderflow}
			}
			lhs, rhs := values[len(values)-2], values[len(values)-1]
			values = values[:len(values)-2]

			v, err := apply(tok, lhs, rhs)
			if err != nil {
				return 0, err
			}
			values = append(values, v)
		default:
			return 0, &EvaluationError{Token: tok.Value, Pos: tok.Pos, Err: ErrMalformed}
		}
	}

	if len(values) != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformed, len(values))
	}
	return values[0], nil
}

// EvaluateInfix converts expr with the default precedence table and evaluates it.
func EvaluateInfix(expr string, vars Vars) (float64, error) {
	p, err := postfix.Convert(expr)
	if err != nil {
		return 0, err
	}
	return Evaluate(p, vars)
}

func operandValue(tok token.Token, vars Vars) (float64, error) {
	if isNumeric(tok.Value) {
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return 0, &EvaluationError{Token: tok.Value, Pos: tok.Pos, Err: fmt.Errorf("%w: %v", ErrInvalidOperand, err)}
		}
		return v, nil
	}

	if r := []rune(tok.Value); len(r) > 0 && unicode.IsDigit(r[0]) {
		return 0, &EvaluationError{Token: tok.Value, Pos: tok.Pos, Err: ErrInvalidOperand}
	}

	v, ok := vars[tok.Value]
	if !ok {
		return 0, &EvaluationError{Token: tok.Value, Pos: tok.Pos, Err: ErrUnknownVariable}
	}
	return v, nil
}

func apply(op token.Token, lhs, rhs float64) (float64, error) {
	switch op.Value {
	case "+":
		return lhs + rhs, nil
	case "-":
		return lhs - rhs, nil
	case "*":
		return lhs * rhs, nil
	case "/":
		if rhs == 0 {
			return 0, &EvaluationError{Token: op.Value, Pos: op.Pos, Err: ErrDivisionByZero}
		}
		return lhs / rhs, nil
	default:
		return 0, &EvaluationError{Token: op.Value, Pos: op.Pos, Err: ErrUnknownOperator}
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
