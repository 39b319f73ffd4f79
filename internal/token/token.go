package token

type Type int

const (
	EOF Type = iota
	OPERAND
	OPERATOR
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case OPERAND:
		return "OPERAND"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type, literal value and
// rune offset in the scanned input.
type Token struct {
	Type  Type
	Value string
	Pos   int
}

func (t Token) IsOperand() bool {
	return t.Type == OPERAND
}

func (t Token) IsOperator() bool {
	return t.Type == OPERATOR
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return t.Value
}
