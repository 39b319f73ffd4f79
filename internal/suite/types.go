package suite

import "github.com/DjordjeVuckovic/rpn/internal/postfix"

type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is one expected conversion. Postfix is a pointer so that an expected
// empty output ("" -> "") can be told apart from no expectation at all.
type Case struct {
	ID          string             `yaml:"id"`
	Description string             `yaml:"description,omitempty"`
	Infix       string             `yaml:"infix"`
	SingleRune  bool               `yaml:"single_rune,omitempty"`
	Postfix     *string            `yaml:"postfix,omitempty"`
	Error       postfix.Kind       `yaml:"error,omitempty"`
	Vars        map[string]float64 `yaml:"vars,omitempty"`
	Value       *float64           `yaml:"value,omitempty"`
}

func (c *Case) expected() string {
	switch {
	case c.Error != "":
		return string(c.Error)
	case c.Postfix != nil:
		return *c.Postfix
	default:
		return "-"
	}
}
