// Package postfix converts infix arithmetic expressions to Reverse Polish
// notation with the shunting-yard algorithm.
package postfix

import (
	"github.com/DjordjeVuckovic/rpn/internal/token"
)

type Option func(*Converter)

// WithPrecedence replaces the default arithmetic precedence table.
func WithPrecedence(table PrecedenceTable) Option {
	return func(c *Converter) {
		c.table = table
	}
}

// WithSingleRuneOperands treats every letter or digit as its own operand.
func WithSingleRuneOperands() Option {
	return func(c *Converter) {
		c.tokenizerOpts = append(c.tokenizerOpts, token.WithSingleRuneOperands())
	}
}

// Converter is immutable after construction and safe for concurrent use.
type Converter struct {
	table         PrecedenceTable
	tokenizerOpts []token.InfixOption
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{table: DefaultPrecedence()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// Convert converts infix with the default precedence table.
func Convert(infix string) (Postfix, error) {
	return defaultConverter.Convert(infix)
}

// Convert tokenizes infix and returns its postfix form. On failure the
// returned error is a *SyntaxError and no partial result is returned.
func (c *Converter) Convert(infix string) (Postfix, error) {
	tokens, err := token.NewInfixTokenizer(c.tokenizerOpts...).Tokenize(infix)
	if err != nil {
		return nil, invalidCharacter(err)
	}
	return c.ConvertTokens(tokens)
}

// ConvertTokens runs the conversion over an already scanned token stream.
// Scanning stops at the first EOF token.
func (c *Converter) ConvertTokens(tokens []token.Token) (Postfix, error) {
	ops := newStack(len(tokens) / 2)
	out := make(Postfix, 0, len(tokens))

	for _, tok := range tokens {
		switch tok.Type {
		case token.EOF:
			return drain(ops, out)
		case token.OPERAND:
			out = append(out, tok)
		case token.LPAREN:
			ops.push(tok)
		case token.RPAREN:
			var matched bool
			out, matched = popUntilOpen(ops, out)
			if !matched {
				return nil, unbalanced(tok)
			}
		case token.OPERATOR:
			info, ok := c.table.Lookup(tok.Value)
			if !ok {
				return nil, unknownOperator(tok)
			}
			for {
				top, ok := ops.peek()
				if !ok || top.Type == token.LPAREN {
					break
				}
				// only operators that passed Lookup above are ever pushed
				topInfo, _ := c.table.Lookup(top.Value)
				if !yields(topInfo, info) {
					break
				}
				ops.pop()
				out = append(out, top)
			}
			ops.push(tok)
		default:
			return nil, unknownOperator(tok)
		}
	}

	return drain(ops, out)
}

func drain(ops *stack, out Postfix) (Postfix, error) {
	for !ops.empty() {
		top, _ := ops.pop()
		if top.Type == token.LPAREN {
			return nil, unbalanced(top)
		}
		out = append(out, top)
	}
	return out, nil
}

// popUntilOpen moves operators to out until the nearest "(" is removed.
// It reports false if the stack ran out first.
func popUntilOpen(ops *stack, out Postfix) (Postfix, bool) {
	for {
		top, ok := ops.pop()
		if !ok {
			return out, false
		}
		if top.Type == token.LPAREN {
			return out, true
		}
		out = append(out, top)
	}
}

func unknownOperator(tok token.Token) *SyntaxError {
	r := []rune(tok.Value)
	ch := rune(0)
	if len(r) > 0 {
		ch = r[0]
	}
	return invalidCharacter(&token.InvalidCharacterError{Rune: ch, Pos: tok.Pos})
}
