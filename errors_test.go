package hmm

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorPrefix(t *testing.T) {
	sentinels := []error{
		ErrInvalidLabels,
		ErrUnknownLabel,
		ErrMissingProbability,
		ErrNegativeProbability,
		ErrNotNormalized,
		ErrDimensionMismatch,
		ErrInvalidSequence,
		ErrModelMismatch,
	}
	for _, err := range sentinels {
		assert.True(t, strings.HasPrefix(err.Error(), "hmm: "), "%q", err)
	}
}

func TestSentinelErrorsIsCheck(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrNotNormalized)
	assert.True(t, errors.Is(wrapped, ErrNotNormalized))
	assert.False(t, errors.Is(wrapped, ErrMissingProbability))
}
