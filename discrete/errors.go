package discrete

import "errors"

var (
	// ErrInvalidLength is returned when a sample length is not positive.
	ErrInvalidLength = errors.New("discrete: invalid sequence length")

	// ErrNotInitialized is returned when the engine is used before Set or Fit.
	ErrNotInitialized = errors.New("discrete: parameters not initialized")

	// ErrInvalidObservation is returned for an empty sequence or a symbol
	// outside [0, nSymbols).
	ErrInvalidObservation = errors.New("discrete: invalid observation")

	// ErrDimensionMismatch is returned when Set receives matrices of the wrong shape.
	ErrDimensionMismatch = errors.New("discrete: dimension mismatch")

	// ErrInvalidParameters is returned when a probability row is negative,
	// non-finite, or does not sum to 1.
	ErrInvalidParameters = errors.New("discrete: invalid parameters")

	// ErrZeroLikelihood is returned by Fit when the sequence is impossible
	// under the current parameters.
	ErrZeroLikelihood = errors.New("discrete: sequence has zero likelihood")
)
