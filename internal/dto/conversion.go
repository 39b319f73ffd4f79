package dto

import (
	"time"

	"github.com/google/uuid"
)

type ConvertRequest struct {
	Expression string `json:"expression" example:"(A+B)*C"`
	// SingleRune treats every letter or digit as its own operand.
	SingleRune bool `json:"singleRune,omitempty"`
}

type ConvertResponse struct {
	ID      uuid.UUID `json:"id"`
	Infix   string    `json:"infix" example:"(A+B)*C"`
	Postfix string    `json:"postfix" example:"AB+C*"`
	Spaced  string    `json:"spaced" example:"A B + C *"`
	Tokens  []string  `json:"tokens"`
}

type EvaluateRequest struct {
	Expression string             `json:"expression" example:"A*(B+2)"`
	Vars       map[string]float64 `json:"vars,omitempty"`
}

type EvaluateResponse struct {
	Infix   string  `json:"infix"`
	Postfix string  `json:"postfix"`
	Value   float64 `json:"value"`
}

// ErrorResponse is returned for expressions that cannot be converted or evaluated.
type ErrorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty" example:"unbalanced_parentheses"`
	Position *int   `json:"position,omitempty"`
}

type Conversion struct {
	ID        uuid.UUID `json:"id"`
	Infix     string    `json:"infix"`
	Postfix   string    `json:"postfix,omitempty"`
	Tokens    []string  `json:"tokens,omitempty"`
	Status    string    `json:"status" example:"succeeded"`
	Error     string    `json:"error,omitempty"`
	Kind      string    `json:"kind,omitempty"`
	Position  *int      `json:"position,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConversionPage struct {
	Items   []Conversion `json:"items"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	Size    int          `json:"size"`
	HasMore bool         `json:"has_more"`
}
