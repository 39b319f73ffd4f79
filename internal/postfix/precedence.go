package postfix

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/rpn/internal/token"
)

type Associativity int

const (
	LeftAssoc Associativity = iota
	RightAssoc
)

func (a Associativity) String() string {
	if a == RightAssoc {
		return "right"
	}
	return "left"
}

// OperatorInfo is the binding strength of a binary operator.
type OperatorInfo struct {
	Rank  int
	Assoc Associativity
}

// PrecedenceTable is a read-only operator table. The zero value knows no operators.
type PrecedenceTable struct {
	ops map[string]OperatorInfo
}

// DefaultPrecedence returns the arithmetic table: + and - bind with rank 1,
// * and / with rank 2, all left-associative.
func DefaultPrecedence() PrecedenceTable {
	return PrecedenceTable{ops: map[string]OperatorInfo{
		"+": {Rank: 1, Assoc: LeftAssoc},
		"-": {Rank: 1, Assoc: LeftAssoc},
		"*": {Rank: 2, Assoc: LeftAssoc},
		"/": {Rank: 2, Assoc: LeftAssoc},
	}}
}

// NewPrecedenceTable builds a table from ops. Only operators the tokenizer
// recognizes may be listed and every rank must be positive.
func NewPrecedenceTable(ops map[string]OperatorInfo) (PrecedenceTable, error) {
	for sym, info := range ops {
		r := []rune(sym)
		if len(r) != 1 || !token.IsOperatorRune(r[0]) {
			return PrecedenceTable{}, fmt.Errorf("unsupported operator %q", sym)
		}
		if info.Rank <= 0 {
			return PrecedenceTable{}, fmt.Errorf("operator %q: rank must be positive, got %d", sym, info.Rank)
		}
	}
	return PrecedenceTable{ops: maps.Clone(ops)}, nil
}

func (pt PrecedenceTable) Lookup(op string) (OperatorInfo, bool) {
	info, ok := pt.ops[op]
	return info, ok
}

// yields reports whether an operator already on the stack must be emitted
// before incoming is pushed.
func yields(top, incoming OperatorInfo) bool {
	if incoming.Assoc == RightAssoc {
		return top.Rank > incoming.Rank
	}
	return top.Rank >= incoming.Rank
}

func (pt PrecedenceTable) String() string {
	syms := make([]string, 0, len(pt.ops))
	for sym := range pt.ops {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	var b strings.Builder
	for i, sym := range syms {
		if i > 0 {
			b.WriteString(" ")
		}
		info := pt.ops[sym]
		fmt.Fprintf(&b, "%s:%d/%s", sym, info.Rank, info.Assoc)
	}
	return b.String()
}
