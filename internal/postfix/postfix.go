package postfix

import (
	"strings"

	"github.com/DjordjeVuckovic/rpn/internal/token"
)

// Postfix is a finished conversion result in Reverse Polish order.
type Postfix []token.Token

// String concatenates token values, e.g. "ABC+*D/". It is ambiguous when
// operands span more than one character; use Spaced for those.
func (p Postfix) String() string {
	var b strings.Builder
	for _, tok := range p {
		b.WriteString(tok.Value)
	}
	return b.String()
}

// Spaced joins token values with single spaces, e.g. "12 3 +".
func (p Postfix) Spaced() string {
	return strings.Join(p.Values(), " ")
}

func (p Postfix) Values() []string {
	values := make([]string, len(p))
	for i, tok := range p {
		values[i] = tok.Value
	}
	return values
}
