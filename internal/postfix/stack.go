package postfix

import "github.com/DjordjeVuckovic/rpn/internal/token"

// stack holds operators and unmatched open parentheses, never operands.
type stack struct {
	items []token.Token
}

func newStack(capacity int) *stack {
	return &stack{items: make([]token.Token, 0, capacity)}
}

func (s *stack) push(tok token.Token) {
	s.items = append(s.items, tok)
}

func (s *stack) pop() (token.Token, bool) {
	if len(s.items) == 0 {
		return token.Token{}, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *stack) peek() (token.Token, bool) {
	if len(s.items) == 0 {
		return token.Token{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *stack) empty() bool {
	return len(s.items) == 0
}
