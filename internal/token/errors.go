package token

import (
	"errors"
	"fmt"
)

var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError reports a rune that is neither an operand character,
// one of the four operators, nor a parenthesis.
type InvalidCharacterError struct {
	Rune rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Rune, e.Pos)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
