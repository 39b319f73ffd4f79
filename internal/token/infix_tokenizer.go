package token

import (
	"unicode"
)

type InfixOption func(*InfixTokenizer)

// WithSingleRuneOperands makes every letter or digit a separate operand,
// so "AB+C" yields the operands A, B and C.
func WithSingleRuneOperands() InfixOption {
	return func(t *InfixTokenizer) {
		t.singleRune = true
	}
}

// InfixTokenizer scans arithmetic infix expressions. Operands are maximal
// runs of letters and digits, whitespace separates tokens and is dropped.
// An InfixTokenizer is not safe for concurrent use.
type InfixTokenizer struct {
	input      []rune
	pos        int
	singleRune bool
}

func NewInfixTokenizer(opts ...InfixOption) *InfixTokenizer {
	t := &InfixTokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize converts the input string into a slice of Tokens terminated by EOF.
// Example: Input: `A*(B+C)/D`
func (t *InfixTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(input)
	t.pos = 0

	tokens := make([]Token, 0, len(t.input)+1)

	for t.skipWhitespace(); t.pos < len(t.input); t.skipWhitespace() {
		ch := t.input[t.pos]
		switch {
		case ch == '(':
			tokens = append(tokens, Token{Type: LPAREN, Value: "(", Pos: t.pos})
			t.pos++
		case ch == ')':
			tokens = append(tokens, Token{Type: RPAREN, Value: ")", Pos: t.pos})
			t.pos++
		case IsOperatorRune(ch):
			tokens = append(tokens, Token{Type: OPERATOR, Value: string(ch), Pos: t.pos})
			t.pos++
		case isOperandRune(ch):
			tokens = append(tokens, t.readOperand())
		default:
			return nil, &InvalidCharacterError{Rune: ch, Pos: t.pos}
		}
	}

	tokens = append(tokens, Token{Type: EOF, Pos: t.pos})
	return tokens, nil
}

func (t *InfixTokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

func (t *InfixTokenizer) readOperand() Token {
	start := t.pos
	if t.singleRune {
		t.pos++
		return Token{Type: OPERAND, Value: string(t.input[start]), Pos: start}
	}
	for t.pos < len(t.input) && isOperandRune(t.input[t.pos]) {
		t.pos++
	}
	return Token{Type: OPERAND, Value: string(t.input[start:t.pos]), Pos: start}
}

// IsOperatorRune reports whether ch is one of the binary operators + - * /.
func IsOperatorRune(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/':
		return true
	}
	return false
}

func isOperandRune(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

var _ Tokenizer = (*InfixTokenizer)(nil)
