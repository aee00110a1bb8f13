package hmm

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Tolerance is the allowed deviation from 1 for the sum of a distribution.
const Tolerance = 1e-9

// Parameters is the labelled form of an HMM: the ordered hidden states, the
// ordered observation symbols and the initial, transition and emission
// distributions keyed by label.
//
// Parameters is passed by value; use Clone before mutating a shared record.
type Parameters struct {
	States     []string                      `json:"states" yaml:"states"`
	Symbols    []string                      `json:"symbols" yaml:"symbols"`
	Initial    map[string]float64            `json:"initial" yaml:"initial"`
	Transition map[string]map[string]float64 `json:"transition" yaml:"transition"`
	Emission   map[string]map[string]float64 `json:"emission" yaml:"emission"`
}

// SunnyParameters returns the "mostly sunny" parameterisation.
func SunnyParameters() Parameters {
	return weatherParameters(
		map[string]float64{"rain": 0.2, "sun": 0.8},
		map[string]float64{"rain": 0.2, "sun": 0.8},
	)
}

// RainyParameters returns the "mostly rainy" parameterisation. It differs from
// SunnyParameters only in the initial and transition probabilities.
func RainyParameters() Parameters {
	return weatherParameters(
		map[string]float64{"rain": 0.8, "sun": 0.2},
		map[string]float64{"rain": 0.8, "sun": 0.2},
	)
}

func weatherParameters(initial, row map[string]float64) Parameters {
	return Parameters{
		States:  []string{"rain", "sun"},
		Symbols: []string{"walk", "shop", "clean"},
		Initial: initial,
		Transition: map[string]map[string]float64{
			"rain": maps.Clone(row),
			"sun":  maps.Clone(row),
		},
		Emission: map[string]map[string]float64{
			"rain": {"walk": 0.1, "shop": 0.4, "clean": 0.5},
			"sun":  {"walk": 0.6, "shop": 0.3, "clean": 0.1},
		},
	}
}

// Clone returns a deep copy of p.
func (p Parameters) Clone() Parameters {
	out := Parameters{
		States:  slices.Clone(p.States),
		Symbols: slices.Clone(p.Symbols),
		Initial: maps.Clone(p.Initial),
	}
	if p.Transition != nil {
		out.Transition = make(map[string]map[string]float64, len(p.Transition))
		for k, row := range p.Transition {
			out.Transition[k] = maps.Clone(row)
		}
	}
	if p.Emission != nil {
		out.Emission = make(map[string]map[string]float64, len(p.Emission))
		for k, row := range p.Emission {
			out.Emission[k] = maps.Clone(row)
		}
	}
	return out
}

// Validate checks that the labels are usable and that every distribution
// covers exactly the declared labels, holds finite non-negative values and
// sums to 1 within Tolerance.
func (p Parameters) Validate() error {
	if err := validateLabels("state", p.States); err != nil {
		return err
	}
	if err := validateLabels("symbol", p.Symbols); err != nil {
		return err
	}

	if err := validateRow("initial", p.Initial, p.States); err != nil {
		return err
	}
	if err := validateTable("transition", p.Transition, p.States, p.States); err != nil {
		return err
	}
	return validateTable("emission", p.Emission, p.States, p.Symbols)
}

func validateLabels(kind string, labels []string) error {
	if len(labels) == 0 {
		return fmt.Errorf("%w: no %ss declared", ErrInvalidLabels, kind)
	}
	seen := make(map[string]bool, len(labels))
	for i, l := range labels {
		if l == "" {
			return fmt.Errorf("%w: %s %d is empty", ErrInvalidLabels, kind, i)
		}
		if seen[l] {
			return fmt.Errorf("%w: duplicate %s %q", ErrInvalidLabels, kind, l)
		}
		seen[l] = true
	}
	return nil
}

func validateTable(name string, table map[string]map[string]float64, rows, cols []string) error {
	if err := checkKeys(name, table, rows); err != nil {
		return err
	}
	for _, r := range rows {
		if err := validateRow(fmt.Sprintf("%s[%q]", name, r), table[r], cols); err != nil {
			return err
		}
	}
	return nil
}

func validateRow(name string, row map[string]float64, labels []string) error {
	if err := checkKeys(name, row, labels); err != nil {
		return err
	}
	var sum float64
	for _, l := range labels {
		v := row[l]
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%q] = %v", ErrNegativeProbability, name, l, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > Tolerance {
		return fmt.Errorf("%w: %s sums to %v", ErrNotNormalized, name, sum)
	}
	return nil
}

// checkKeys reports keys of m that are not in labels, then labels missing from m.
func checkKeys[V any](name string, m map[string]V, labels []string) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if !slices.Contains(labels, k) {
			return fmt.Errorf("%w: %s has key %q", ErrUnknownLabel, name, k)
		}
	}
	for _, l := range labels {
		if _, ok := m[l]; !ok {
			return fmt.Errorf("%w: %s[%q]", ErrMissingProbability, name, l)
		}
	}
	return nil
}
