package hmm

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// Engine is the numerical collaborator behind a Model. States and symbols are
// addressed by index in the order fixed by Parameters.Matrices.
//
// Implementations need not be safe for concurrent use.
type Engine interface {
	// Set installs the initial vector, the transition matrix and the
	// emission matrix.
	Set(start []float64, trans, emit mat.Matrix) error

	// Sample draws n observations and the hidden states that produced them.
	Sample(n int) (obs, states []int, err error)

	// Score returns the natural-log likelihood of obs.
	Score(obs []int) (float64, error)

	// Predict returns the most likely hidden-state path for obs.
	Predict(obs []int) ([]int, error)

	// Fit re-estimates the parameters from obs.
	Fit(ctx context.Context, obs []int) error

	// Params returns copies of the current parameters.
	Params() (start []float64, trans, emit *mat.Dense)
}

// EngineFactory constructs an unconfigured Engine for the given number of
// hidden states and observation symbols.
type EngineFactory func(nStates, nSymbols int) Engine
