package hmm

import (
	"fmt"
	"slices"
)

// Sequence is an observation sequence and, when known, the hidden states that
// produced it. Values are indices into the model's symbols and states.
type Sequence struct {
	Observations []int `json:"observations"`
	States       []int `json:"states,omitempty"` // nil when the true states are unknown.
}

// Len returns the number of observations.
func (s Sequence) Len() int {
	return len(s.Observations)
}

// clone returns a deep copy of the sequence.
func (s Sequence) clone() Sequence {
	return Sequence{
		Observations: slices.Clone(s.Observations),
		States:       slices.Clone(s.States),
	}
}

// Step is one labelled position of a sequence.
type Step struct {
	Index  int    `json:"index"`
	State  string `json:"state,omitempty"`
	Symbol string `json:"symbol"`
}

// Matches returns the number of positions where a and b agree.
// Returns ErrInvalidSequence if their lengths differ.
func Matches(a, b []int) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: lengths %d and %d differ", ErrInvalidSequence, len(a), len(b))
	}
	n := 0
	for i := range a {
		if a[i] == b[i] {
			n++
		}
	}
	return n, nil
}
