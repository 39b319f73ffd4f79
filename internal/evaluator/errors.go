package evaluator

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow  = errors.New("operator is missing an operand")
	ErrMalformed       = errors.New("malformed postfix expression")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownVariable = errors.New("unknown variable")
	ErrInvalidOperand  = errors.New("invalid operand")
	ErrUnknownOperator = errors.New("unknown operator")
)

// EvaluationError ties an evaluation failure to the offending token.
type EvaluationError struct {
	Token string
	Pos   int
	Err   error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error at position %d (%q): %v", e.Pos, e.Token, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
