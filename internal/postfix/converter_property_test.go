package postfix_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/rpn/internal/evaluator"
	"github.com/DjordjeVuckovic/rpn/internal/postfix"
	"pgregory.net/rapid"
)

// node is a binary expression tree over single digit operands.
type node struct {
	op          string
	digit       int
	left, right *node
	paren       bool
}

var rank = map[string]int{"+": 1, "-": 1, "*": 2, "/": 2}

func drawTree(t *rapid.T, depth int) *node {
	if depth == 0 || rapid.IntRange(0, 3).Draw(t, "leaf") == 0 {
		return &node{
			digit: rapid.IntRange(1, 9).Draw(t, "digit"),
			paren: rapid.IntRange(0, 5).Draw(t, "leafParen") == 0,
		}
	}

	n := &node{
		op:    rapid.SampledFrom([]string{"+", "-", "*", "/"}).Draw(t, "op"),
		left:  drawTree(t, depth-1),
		paren: rapid.IntRange(0, 5).Draw(t, "paren") == 0,
	}
	if n.op == "/" {
		// A leaf divisor keeps every quotient finite.
		n.right = &node{digit: rapid.IntRange(1, 9).Draw(t, "divisor")}
	} else {
		n.right = drawTree(t, depth-1)
	}
	return n
}

func (n *node) infix() string {
	if n.op == "" {
		s := strconv.Itoa(n.digit)
		if n.paren {
			return "(" + s + ")"
		}
		return s
	}

	l, r := n.left.infix(), n.right.infix()
	if n.left.op != "" && rank[n.left.op] < rank[n.op] {
		l = "(" + l + ")"
	}
	if n.right.op != "" && rank[n.right.op] <= rank[n.op] {
		r = "(" + r + ")"
	}

	s := l + n.op + r
	if n.paren {
		return "(" + s + ")"
	}
	return s
}

func (n *node) value() float64 {
	if n.op == "" {
		return float64(n.digit)
	}
	l, r := n.left.value(), n.right.value()
	switch n.op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	default:
		return l / r
	}
}

func TestConvert_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := drawTree(t, 5)
		infix := tree.infix()

		p, err := postfix.Convert(infix)
		if err != nil {
			t.Fatalf("convert %q: %v", infix, err)
		}

		got, err := evaluator.Evaluate(p, nil)
		if err != nil {
			t.Fatalf("evaluate %q (%s): %v", infix, p, err)
		}

		if want := tree.value(); got != want {
			t.Fatalf("%q -> %q evaluated to %v, want %v", infix, p, got, want)
		}
	})
}

func TestConvert_LengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		infix := drawTree(t, 6).infix()

		p, err := postfix.Convert(infix)
		if err != nil {
			t.Fatalf("convert %q: %v", infix, err)
		}

		pairs := strings.Count(infix, "(")
		if got, want := len(p.String()), len(infix)-2*pairs; got != want {
			t.Fatalf("%q -> %q: length %d, want %d", infix, p, got, want)
		}
	})
}

func TestConvert_OperandOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		infix := drawTree(t, 6).infix()

		p, err := postfix.Convert(infix)
		if err != nil {
			t.Fatalf("convert %q: %v", infix, err)
		}

		var inOperands, outOperands strings.Builder
		for _, r := range infix {
			if r >= '0' && r <= '9' {
				inOperands.WriteRune(r)
			}
		}
		for _, tok := range p {
			if tok.IsOperand() {
				outOperands.WriteString(tok.Value)
			}
		}
		if inOperands.String() != outOperands.String() {
			t.Fatalf("%q -> %q reordered operands", infix, p)
		}
	})
}

func TestConvert_UnbalancedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		infix := drawTree(t, 4).infix()
		broken := rapid.SampledFrom([]string{"(" + infix, infix + ")"}).Draw(t, "broken")

		_, err := postfix.Convert(broken)
		if postfix.KindOf(err) != postfix.KindUnbalancedParentheses {
			t.Fatalf("%q: expected unbalanced parentheses, got %v", broken, err)
		}
	})
}
