package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/rpn/internal/postfix"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		switch c.Error {
		case "", postfix.KindUnbalancedParentheses, postfix.KindInvalidCharacter:
		default:
			return nil, fmt.Errorf("case %q: unknown error kind %q", c.ID, c.Error)
		}
		if c.Error != "" && c.Postfix != nil {
			return nil, fmt.Errorf("case %q: expects both a postfix and an error", c.ID)
		}
		if c.Error != "" && c.Value != nil {
			return nil, fmt.Errorf("case %q: expects both a value and an error", c.ID)
		}
	}
	return &s, nil
}
