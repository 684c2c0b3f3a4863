package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
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
		return nil, apperr.NewValidation("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("case at index %d has no id", i))
		}
		if _, dup := seen[c.ID]; dup {
			return nil, apperr.NewValidation(fmt.Sprintf("duplicate case id %q", c.ID))
		}
		seen[c.ID] = struct{}{}

		if c.Expression == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("case %q has no expression", c.ID))
		}
		if len(c.Expect) == 0 {
			return nil, apperr.NewValidation(fmt.Sprintf("case %q has no expectations", c.ID))
		}

		c.expected = make(map[expr.Regime]int64, len(c.Expect))
		for name, v := range c.Expect {
			r, err := expr.ParseRegime(name)
			if err != nil {
				return nil, apperr.NewValidationWrap(fmt.Sprintf("case %q", c.ID), err)
			}
			if _, dup := c.expected[r]; dup {
				return nil, apperr.NewValidation(fmt.Sprintf("case %q expects %s twice", c.ID, r))
			}
			c.expected[r] = v
		}
	}

	return &s, nil
}
