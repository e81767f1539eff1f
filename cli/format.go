package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"gopkg.in/yaml.v3"
)

func format(v any, output outputValue) (string, error) {
	switch output {
	case outputYaml:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to format YAML: %v", err)
		}
		return string(b), nil
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to format JSON: %v", err)
		}
		return string(b) + "\n", nil
	}
}

// queryJSONPath returns the single value, matching the expression, or a list of all matching values.
func queryJSONPath(expression string, v any) (any, error) {
	x, err := jp.ParseString(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath expression %s: %v", expression, err)
	}

	results := x.Get(v)
	if len(results) == 1 {
		return results[0], nil
	}
	if results == nil {
		return []any{}, nil
	}
	return results, nil
}
