package postfix

import (
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/rpn/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "reference example", input: "A*(B+C)/D", expected: "ABC+*D/"},
		{name: "left associative subtraction", input: "A-B-C", expected: "AB-C-"},
		{name: "left associative division", input: "A/B/C", expected: "AB/C/"},
		{name: "mixed equal precedence", input: "A-B+C", expected: "AB-C+"},
		{name: "multiplication binds tighter", input: "A+B*C", expected: "ABC*+"},
		{name: "higher precedence first", input: "A*B+C", expected: "AB*C+"},
		{name: "parentheses override precedence", input: "(A+B)*C", expected: "AB+C*"},
		{name: "right grouping by parentheses", input: "A-(B-C)", expected: "ABC--"},
		{name: "nested parentheses", input: "((A+B)*(C-D))/E", expected: "AB+CD-*E/"},
		{name: "single parenthesized operand", input: "(A)", expected: "A"},
		{name: "deeply parenthesized operand", input: "(((A)))", expected: "A"},
		{name: "empty parentheses", input: "()", expected: ""},
		{name: "no operators", input: "A", expected: "A"},
		{name: "empty input", input: "", expected: ""},
		{name: "whitespace is ignored", input: " A + B * C ", expected: "ABC*+"},
		{name: "long chain", input: "A+B*C-D/E*F+G", expected: "ABC*+DE/F*-G+"},
		{name: "multi character operands", input: "price*qty-discount", expected: "priceqty*discount-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestConvert_Spaced(t *testing.T) {
	got, err := Convert("12 + 3 * x1")
	require.NoError(t, err)
	assert.Equal(t, "12 3 x1 * +", got.Spaced())
	assert.Equal(t, []string{"12", "3", "x1", "*", "+"}, got.Values())
}

func TestConvert_PreservesTokenPositions(t *testing.T) {
	got, err := Convert("A * (B + C)")
	require.NoError(t, err)

	positions := make([]int, len(got))
	for i, tok := range got {
		positions[i] = tok.Pos
	}
	// A B C + *
	assert.Equal(t, []int{0, 5, 9, 7, 2}, positions)
}

func TestConvert_UnbalancedParentheses(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantPos int
		wantTok string
	}{
		{name: "unclosed open", input: "(A+B", wantPos: 0, wantTok: "("},
		{name: "unmatched close", input: "A+B)", wantPos: 3, wantTok: ")"},
		{name: "close before open", input: ")A(", wantPos: 0, wantTok: ")"},
		{name: "inner unclosed", input: "A*((B+C)", wantPos: 2, wantTok: "("},
		{name: "extra close after group", input: "(A+B))*C", wantPos: 5, wantTok: ")"},
		{name: "lone open", input: "(", wantPos: 0, wantTok: "("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input)
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrUnbalancedParentheses)
			assert.Equal(t, KindUnbalancedParentheses, KindOf(err))

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.wantPos, se.Pos)
			assert.Equal(t, tt.wantTok, se.Token)
		})
	}
}

func TestConvert_InvalidCharacter(t *testing.T) {
	tests := []struct {
		input   string
		wantPos int
		wantTok string
	}{
		{input: "A^B", wantPos: 1, wantTok: "^"},
		{input: "A+B%C", wantPos: 3, wantTok: "%"},
		{input: "{A}", wantPos: 0, wantTok: "{"},
		{input: "A = B", wantPos: 2, wantTok: "="},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Convert(tt.input)
			assert.Nil(t, got)
			require.ErrorIs(t, err, token.ErrInvalidCharacter)
			assert.NotErrorIs(t, err, ErrUnbalancedParentheses)
			assert.Equal(t, KindInvalidCharacter, KindOf(err))

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.wantPos, se.Pos)
			assert.Equal(t, tt.wantTok, se.Token)
		})
	}
}

func TestConvert_InvalidCharacterWinsOverParentheses(t *testing.T) {
	_, err := Convert("(A^B")
	assert.Equal(t, KindInvalidCharacter, KindOf(err))
}

func TestKindOf_UnrelatedError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestConverter_SingleRuneOperands(t *testing.T) {
	c := NewConverter(WithSingleRuneOperands())

	got, err := c.Convert("AB*C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "*"}, got.Values())

	multi, err := Convert("AB*C")
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "C", "*"}, multi.Values())
	assert.Equal(t, got.String(), multi.String())
}

func TestConverter_RightAssociativeTable(t *testing.T) {
	table, err := NewPrecedenceTable(map[string]OperatorInfo{
		"+": {Rank: 1},
		"-": {Rank: 1},
		"*": {Rank: 2},
		"/": {Rank: 3, Assoc: RightAssoc},
	})
	require.NoError(t, err)

	got, err := NewConverter(WithPrecedence(table)).Convert("A/B/C")
	require.NoError(t, err)
	assert.Equal(t, "ABC//", got.String())
}

func TestConverter_OperatorMissingFromTable(t *testing.T) {
	table, err := NewPrecedenceTable(map[string]OperatorInfo{
		"+": {Rank: 1},
	})
	require.NoError(t, err)

	_, err = NewConverter(WithPrecedence(table)).Convert("A+B*C")
	require.ErrorIs(t, err, token.ErrInvalidCharacter)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Pos)
	assert.Equal(t, "*", se.Token)
}

func TestConverter_ConvertTokensStopsAtEOF(t *testing.T) {
	tokens := []token.Token{
		{Type: token.OPERAND, Value: "A"},
		{Type: token.OPERATOR, Value: "+", Pos: 1},
		{Type: token.OPERAND, Value: "B", Pos: 2},
		{Type: token.EOF, Pos: 3},
		{Type: token.RPAREN, Value: ")", Pos: 4},
	}

	got, err := NewConverter().ConvertTokens(tokens)
	require.NoError(t, err)
	assert.Equal(t, "AB+", got.String())
}

func TestConverter_ConcurrentUse(t *testing.T) {
	c := NewConverter()
	inputs := map[string]string{
		"A*(B+C)/D": "ABC+*D/",
		"A-B-C":     "AB-C-",
		"(A+B)*C":   "AB+C*",
		"A+B*C":     "ABC*+",
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		for in, want := range inputs {
			wg.Add(1)
			go func(in, want string) {
				defer wg.Done()
				got, err := c.Convert(in)
				if assert.NoError(t, err) {
					assert.Equal(t, want, got.String())
				}
			}(in, want)
		}
	}
	wg.Wait()
}
