// Package problem reads a subset-sum instance from YAML or from CLI arguments.
package problem

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrNoTarget indicates a problem file without a target key.
var ErrNoTarget = errors.New("problem: target is required")

// Problem is one subset-sum instance.
//
// YAML form:
//
//	target: 19
//	items: [4, 3, 6, 5, 4, 3]
type Problem struct {
	Target uint64   `yaml:"target"`
	Items  []uint64 `yaml:"items"`
}

// rawProblem distinguishes a missing target from target: 0.
type rawProblem struct {
	Target *uint64  `yaml:"target"`
	Items  []uint64 `yaml:"items"`
}

// Load reads a Problem from a YAML file. Negative or non-integer values are
// rejected by the decoder.
func Load(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("failed to read problem: %w", err)
	}

	return Parse(data)
}

// Parse decodes a Problem from YAML bytes.
func Parse(data []byte) (Problem, error) {
	var raw rawProblem
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Problem{}, fmt.Errorf("failed to parse problem: %w", err)
	}
	if raw.Target == nil {
		return Problem{}, ErrNoTarget
	}

	return Problem{Target: *raw.Target, Items: raw.Items}, nil
}

// ParseItems converts decimal arguments into item values.
func ParseItems(args []string) ([]uint64, error) {
	items := make([]uint64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", a, err)
		}
		items = append(items, v)
	}

	return items, nil
}
