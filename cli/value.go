package cli

import "fmt"

// outputValue is a custom flag value for an output format.
type outputValue int

const (
	outputJson outputValue = iota
	outputYaml
)

func (v *outputValue) Set(s string) error {
	switch s {
	case "json":
		*v = outputJson
	case "yaml":
		*v = outputYaml
	default:
		return fmt.Errorf("invalid output format %s", s)
	}
	return nil
}

func (v outputValue) String() string {
	switch v {
	case outputYaml:
		return "yaml"
	default:
		return "json"
	}
}

func (v outputValue) Type() string {
	return "output"
}
