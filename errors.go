package hmm

import "errors"

// Sentinel errors for the hmm package.
// Use errors.Is to check: errors.Is(err, hmm.ErrNotNormalized)
var (
	ErrInvalidLabels       = errors.New("hmm: invalid state or symbol labels")
	ErrUnknownLabel        = errors.New("hmm: label not declared")
	ErrMissingProbability  = errors.New("hmm: missing probability")
	ErrNegativeProbability = errors.New("hmm: probability must be finite and non-negative")
	ErrNotNormalized       = errors.New("hmm: distribution does not sum to 1")
	ErrDimensionMismatch   = errors.New("hmm: matrix dimensions do not match labels")
	ErrInvalidSequence     = errors.New("hmm: invalid sequence")
	ErrModelMismatch       = errors.New("hmm: models do not share states and symbols")
)
