package token

import (
	"errors"
	"testing"
)

func TestInfixTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		opts       []InfixOption
		wantTypes  []Type
		wantValues []string
	}{
		{
			name:       "reference expression",
			input:      "A*(B+C)/D",
			wantTypes:  []Type{OPERAND, OPERATOR, LPAREN, OPERAND, OPERATOR, OPERAND, RPAREN, OPERATOR, OPERAND, EOF},
			wantValues: []string{"A", "*", "(", "B", "+", "C", ")", "/", "D", ""},
		},
		{
			name:       "multi character operands",
			input:      "price * 12 - discount2",
			wantTypes:  []Type{OPERAND, OPERATOR, OPERAND, OPERATOR, OPERAND, EOF},
			wantValues: []string{"price", "*", "12", "-", "discount2", ""},
		},
		{
			name:       "single rune operands",
			input:      "AB+C",
			opts:       []InfixOption{WithSingleRuneOperands()},
			wantTypes:  []Type{OPERAND, OPERAND, OPERATOR, OPERAND, EOF},
			wantValues: []string{"A", "B", "+", "C", ""},
		},
		{
			name:       "whitespace only",
			input:      " \t\n ",
			wantTypes:  []Type{EOF},
			wantValues: []string{""},
		},
		{
			name:       "empty",
			input:      "",
			wantTypes:  []Type{EOF},
			wantValues: []string{""},
		},
		{
			name:       "unicode letters",
			input:      "α+β",
			wantTypes:  []Type{OPERAND, OPERATOR, OPERAND, EOF},
			wantValues: []string{"α", "+", "β", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewInfixTokenizer(tt.opts...).Tokenize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != len(tt.wantTypes) {
				t.Fatalf("expected %d tokens, got %d (%v)", len(tt.wantTypes), len(tokens), tokens)
			}
			for i, tok := range tokens {
				if tok.Type != tt.wantTypes[i] {
					t.Errorf("token %d: expected type %s, got %s", i, tt.wantTypes[i], tok.Type)
				}
				if tok.Value != tt.wantValues[i] {
					t.Errorf("token %d: expected value %q, got %q", i, tt.wantValues[i], tok.Value)
				}
			}
		})
	}
}

func TestInfixTokenizer_Positions(t *testing.T) {
	tokens, err := NewInfixTokenizer().Tokenize("ab + (c)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{0, 3, 5, 6, 7, 8}
	for i, tok := range tokens {
		if tok.Pos != want[i] {
			t.Errorf("token %d (%s): expected pos %d, got %d", i, tok, want[i], tok.Pos)
		}
	}
}

func TestInfixTokenizer_InvalidCharacter(t *testing.T) {
	tests := []struct {
		input   string
		wantCh  rune
		wantPos int
	}{
		{input: "A^B", wantCh: '^', wantPos: 1},
		{input: "A + B % C", wantCh: '%', wantPos: 6},
		{input: "[A]", wantCh: '[', wantPos: 0},
		{input: "1.5", wantCh: '.', wantPos: 1},
		{input: "αβ=γ", wantCh: '=', wantPos: 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := NewInfixTokenizer().Tokenize(tt.input)
			if tokens != nil {
				t.Errorf("expected no tokens on failure, got %v", tokens)
			}
			if !errors.Is(err, ErrInvalidCharacter) {
				t.Fatalf("expected ErrInvalidCharacter, got %v", err)
			}
			var charErr *InvalidCharacterError
			if !errors.As(err, &charErr) {
				t.Fatalf("expected *InvalidCharacterError, got %T", err)
			}
			if charErr.Rune != tt.wantCh || charErr.Pos != tt.wantPos {
				t.Errorf("expected %q at %d, got %q at %d", tt.wantCh, tt.wantPos, charErr.Rune, charErr.Pos)
			}
		})
	}
}

func TestInfixTokenizer_Reuse(t *testing.T) {
	tokenizer := NewInfixTokenizer()

	if _, err := tokenizer.Tokenize("A+"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens, err := tokenizer.Tokenize("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 || tokens[0].Value != "B" || tokens[0].Pos != 0 {
		t.Errorf("tokenizer state leaked between calls: %v", tokens)
	}
}
