package hmm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCountsCorrectStates(t *testing.T) {
	e := &fakeEngine{path: []int{1, 0, 1, 1}}
	m := mustFakeModel(t, SunnyParameters(), e)

	seq := Sequence{Observations: []int{0, 2, 0, 1}, States: []int{1, 1, 1, 0}}
	d, err := m.Decode(seq)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 1}, d.Predicted)
	assert.Equal(t, 2, d.Correct)
	assert.Equal(t, seq, d.Sequence)
}

func TestDecodeAccuracyBounds(t *testing.T) {
	seq := Sequence{Observations: []int{0, 1, 2}, States: []int{0, 1, 0}}
	tests := []struct {
		path []int
		want int
	}{
		{[]int{0, 1, 0}, 3},
		{[]int{1, 0, 1}, 0},
		{[]int{0, 0, 0}, 2},
	}
	for _, tt := range tests {
		m := mustFakeModel(t, SunnyParameters(), &fakeEngine{path: tt.path})
		d, err := m.Decode(seq)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.Correct, "path %v", tt.path)
		assert.GreaterOrEqual(t, d.Correct, 0)
		assert.LessOrEqual(t, d.Correct, seq.Len())
	}
}

func TestDecodeWithoutTrueStates(t *testing.T) {
	m := mustFakeModel(t, SunnyParameters(), &fakeEngine{path: []int{1, 1}})
	d, err := m.Decode(Sequence{Observations: []int{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, d.Predicted)
	assert.Zero(t, d.Correct)
}

func TestDecodeCopiesSequence(t *testing.T) {
	m := mustFakeModel(t, SunnyParameters(), &fakeEngine{path: []int{1}})
	seq := Sequence{Observations: []int{0}, States: []int{1}}
	d, err := m.Decode(seq)
	require.NoError(t, err)

	seq.Observations[0] = 2
	assert.Equal(t, []int{0}, d.Sequence.Observations)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	m := mustFakeModel(t, SunnyParameters(), &fakeEngine{path: []int{1, 1}})

	_, err := m.Decode(Sequence{})
	assert.ErrorIs(t, err, ErrInvalidSequence)
	_, err = m.Decode(Sequence{Observations: []int{0, 1}, States: []int{0}})
	assert.ErrorIs(t, err, ErrInvalidSequence)
	_, err = m.Decode(Sequence{Observations: []int{0, 1, 2}})
	assert.ErrorIs(t, err, ErrInvalidSequence, "engine path has the wrong length")
}
