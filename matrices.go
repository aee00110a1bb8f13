package hmm

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Matrices validates p and converts it into the row-ordered form an Engine
// expects: start[i] and trans row i belong to States[i], and emit column k
// belongs to Symbols[k].
func (p Parameters) Matrices() (start []float64, trans, emit *mat.Dense, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, nil, err
	}

	n, k := len(p.States), len(p.Symbols)
	start = make([]float64, n)
	trans = mat.NewDense(n, n, nil)
	emit = mat.NewDense(n, k, nil)

	for i, from := range p.States {
		start[i] = p.Initial[from]
		for j, to := range p.States {
			trans.Set(i, j, p.Transition[from][to])
		}
		for j, sym := range p.Symbols {
			emit.Set(i, j, p.Emission[from][sym])
		}
	}
	return start, trans, emit, nil
}

// ParametersFromMatrices is the inverse of Parameters.Matrices. It labels the
// given matrices with states and symbols and validates the result.
func ParametersFromMatrices(states, symbols []string, start []float64, trans, emit mat.Matrix) (Parameters, error) {
	n, k := len(states), len(symbols)
	if len(start) != n {
		return Parameters{}, fmt.Errorf("%w: start has %d entries, want %d", ErrDimensionMismatch, len(start), n)
	}
	if r, c := trans.Dims(); r != n || c != n {
		return Parameters{}, fmt.Errorf("%w: transition is %dx%d, want %dx%d", ErrDimensionMismatch, r, c, n, n)
	}
	if r, c := emit.Dims(); r != n || c != k {
		return Parameters{}, fmt.Errorf("%w: emission is %dx%d, want %dx%d", ErrDimensionMismatch, r, c, n, k)
	}

	p := Parameters{
		States:     slices.Clone(states),
		Symbols:    slices.Clone(symbols),
		Initial:    make(map[string]float64, n),
		Transition: make(map[string]map[string]float64, n),
		Emission:   make(map[string]map[string]float64, n),
	}
	for i, from := range states {
		p.Initial[from] = start[i]
		p.Transition[from] = make(map[string]float64, n)
		for j, to := range states {
			p.Transition[from][to] = trans.At(i, j)
		}
		p.Emission[from] = make(map[string]float64, k)
		for j, sym := range symbols {
			p.Emission[from][sym] = emit.At(i, j)
		}
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}
