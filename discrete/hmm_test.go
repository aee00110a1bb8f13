package discrete

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// weather is the two-state, three-symbol model used throughout the tests.
var (
	weatherStart = []float64{0.2, 0.8}
	weatherTrans = mat.NewDense(2, 2, []float64{
		0.2, 0.8,
		0.2, 0.8,
	})
	weatherEmit = mat.NewDense(2, 3, []float64{
		0.1, 0.4, 0.5,
		0.6, 0.3, 0.1,
	})
)

func mustEngine(t testing.TB, cfg Config, start []float64, trans, emit mat.Matrix) *HMM {
	t.Helper()
	r, _ := trans.Dims()
	_, c := emit.Dims()
	h := New(r, c, cfg)
	require.NoError(t, h.Set(start, trans, emit))
	return h
}

func seeded(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// randomModel draws strictly positive stochastic parameters.
func randomModel(rng *rand.Rand, nStates, nSymbols int) ([]float64, *mat.Dense, *mat.Dense) {
	row := func(n int) []float64 {
		r := make([]float64, n)
		var s float64
		for i := range r {
			r[i] = rng.Float64() + 0.05
			s += r[i]
		}
		for i := range r {
			r[i] /= s
		}
		return r
	}
	start := row(nStates)
	trans := mat.NewDense(nStates, nStates, nil)
	emit := mat.NewDense(nStates, nSymbols, nil)
	for i := 0; i < nStates; i++ {
		trans.SetRow(i, row(nStates))
		emit.SetRow(i, row(nSymbols))
	}
	return start, trans, emit
}

func TestNewPanicsOnEmptyShape(t *testing.T) {
	assert.Panics(t, func() { New(0, 3, Config{}) })
	assert.Panics(t, func() { New(2, 0, Config{}) })
}

func TestNewDefaults(t *testing.T) {
	h := New(2, 3, Config{})
	assert.Equal(t, 10, h.maxIter)
	assert.Equal(t, 1e-2, h.tol)
	assert.Nil(t, h.rng)

	h = New(2, 3, Config{MaxIter: 4, Tol: 0.5, Source: seeded(1)})
	assert.Equal(t, 4, h.maxIter)
	assert.Equal(t, 0.5, h.tol)
	assert.NotNil(t, h.rng)
}

func TestFactory(t *testing.T) {
	e := Factory(Config{MaxIter: 3})(4, 5)
	h, ok := e.(*HMM)
	require.True(t, ok)
	assert.Equal(t, 4, h.nStates)
	assert.Equal(t, 5, h.nSymbols)
	assert.Equal(t, 3, h.maxIter)
}

func TestSetDimensionMismatch(t *testing.T) {
	tests := []struct {
		name  string
		start []float64
		trans mat.Matrix
		emit  mat.Matrix
	}{
		{"short start", []float64{1}, weatherTrans, weatherEmit},
		{"wide trans", weatherStart, mat.NewDense(2, 3, nil), weatherEmit},
		{"tall emit", weatherStart, weatherTrans, mat.NewDense(3, 3, nil)},
		{"narrow emit", weatherStart, weatherTrans, mat.NewDense(2, 2, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(2, 3, Config{}).Set(tt.start, tt.trans, tt.emit)
			assert.ErrorIs(t, err, ErrDimensionMismatch)
		})
	}
}

func TestSetInvalidRows(t *testing.T) {
	tests := []struct {
		name  string
		start []float64
		trans mat.Matrix
		emit  mat.Matrix
	}{
		{"start not normalized", []float64{0.5, 0.6}, weatherTrans, weatherEmit},
		{"negative start", []float64{-0.2, 1.2}, weatherTrans, weatherEmit},
		{"NaN transition", weatherStart, mat.NewDense(2, 2, []float64{math.NaN(), 1, 0.5, 0.5}), weatherEmit},
		{"Inf emission", weatherStart, weatherTrans, mat.NewDense(2, 3, []float64{math.Inf(1), 0, 0, 0.6, 0.3, 0.1})},
		{"emission row sum", weatherStart, weatherTrans, mat.NewDense(2, 3, []float64{0.1, 0.4, 0.5, 0.6, 0.3, 0.2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(2, 3, Config{})
			err := h.Set(tt.start, tt.trans, tt.emit)
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.False(t, h.ready)
		})
	}
}

func TestSetCopiesInput(t *testing.T) {
	start := []float64{0.2, 0.8}
	trans := mat.DenseCopyOf(weatherTrans)
	h := mustEngine(t, Config{}, start, trans, weatherEmit)

	start[0] = 7
	trans.Set(0, 0, 7)

	s, tr, e := h.Params()
	assert.Equal(t, weatherStart, s)
	assert.True(t, mat.Equal(weatherTrans, tr))
	assert.True(t, mat.Equal(weatherEmit, e))

	// Params returns copies as well.
	s[0] = 9
	tr.Set(1, 1, 9)
	s2, tr2, _ := h.Params()
	assert.Equal(t, 0.2, s2[0])
	assert.Equal(t, 0.8, tr2.At(1, 1))
}

func TestNotInitialized(t *testing.T) {
	h := New(2, 3, Config{})

	_, _, err := h.Sample(5)
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = h.Score([]int{0, 1})
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = h.Predict([]int{0, 1})
	assert.ErrorIs(t, err, ErrNotInitialized)

	s, tr, e := h.Params()
	assert.Nil(t, s)
	assert.Nil(t, tr)
	assert.Nil(t, e)
}
