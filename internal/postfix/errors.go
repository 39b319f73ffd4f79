package postfix

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/rpn/internal/token"
)

var ErrUnbalancedParentheses = errors.New("unbalanced parentheses")

type Kind string

const (
	KindUnbalancedParentheses Kind = "unbalanced_parentheses"
	KindInvalidCharacter      Kind = "invalid_character"
)

// SyntaxError describes why an infix expression could not be converted.
// Pos is the rune offset of the offending token.
type SyntaxError struct {
	Kind  Kind
	Pos   int
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	if e.Kind == KindInvalidCharacter {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at position %d: %q", e.Err, e.Pos, e.Token)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func unbalanced(tok token.Token) *SyntaxError {
	return &SyntaxError{
		Kind:  KindUnbalancedParentheses,
		Pos:   tok.Pos,
		Token: tok.Value,
		Err:   ErrUnbalancedParentheses,
	}
}

func invalidCharacter(err error) *SyntaxError {
	se := &SyntaxError{Kind: KindInvalidCharacter, Err: err}

	var charErr *token.InvalidCharacterError
	if errors.As(err, &charErr) {
		se.Pos = charErr.Pos
		se.Token = string(charErr.Rune)
	}
	return se
}

// KindOf returns the kind of a conversion failure, or "" if err is not one.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrUnbalancedParentheses):
		return KindUnbalancedParentheses
	case errors.Is(err, token.ErrInvalidCharacter):
		return KindInvalidCharacter
	default:
		return ""
	}
}
