package hmm

import (
	"fmt"
	"math"
	"slices"
)

// Comparison holds the scores of one sequence under two models.
type Comparison struct {
	LogFirst  float64 `json:"log_first"`
	LogSecond float64 `json:"log_second"`
	Winner    Winner  `json:"winner"`
	Tie       bool    `json:"tie"` // scores were equal; Winner is Second.
}

// First returns the likelihood under the first model.
func (c Comparison) First() float64 {
	return math.Exp(c.LogFirst)
}

// Second returns the likelihood under the second model.
func (c Comparison) Second() float64 {
	return math.Exp(c.LogSecond)
}

// Compare scores obs under both models and attributes it to the one with the
// higher likelihood. The first model wins only with a strictly greater score,
// so ties go to the second model and are flagged in Tie.
//
// Both models must declare the same states and symbols in the same order, so
// that obs means the same thing to each; otherwise Compare returns
// ErrModelMismatch.
//
// Scores are compared as log-likelihoods, which orders them exactly as the
// likelihoods themselves but does not underflow on long sequences.
func Compare(first, second *Model, obs []int) (Comparison, error) {
	if !slices.Equal(first.params.Symbols, second.params.Symbols) {
		return Comparison{}, fmt.Errorf("%w: symbols %v and %v", ErrModelMismatch, first.params.Symbols, second.params.Symbols)
	}
	if !slices.Equal(first.params.States, second.params.States) {
		return Comparison{}, fmt.Errorf("%w: states %v and %v", ErrModelMismatch, first.params.States, second.params.States)
	}
	a, err := first.Score(obs)
	if err != nil {
		return Comparison{}, err
	}
	b, err := second.Score(obs)
	if err != nil {
		return Comparison{}, err
	}

	c := Comparison{LogFirst: a, LogSecond: b, Winner: Second}
	switch {
	case a > b:
		c.Winner = First
	case a == b:
		c.Tie = true
	}
	return c, nil
}
