package discrete

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Score returns the natural-log likelihood of obs. An impossible sequence
// scores -Inf.
func (h *HMM) Score(obs []int) (float64, error) {
	if err := h.checkObservations(obs); err != nil {
		return 0, err
	}
	alpha := mat.NewDense(len(obs), h.nStates, nil)
	scale := make([]float64, len(obs))
	return h.forward(obs, alpha, scale), nil
}

// forward fills alpha with the scaled forward variables and scale with the
// per-step normalizers, and returns the log-likelihood. Row t of alpha sums
// to 1 unless the prefix obs[:t+1] is impossible, in which case forward
// stops and returns -Inf.
func (h *HMM) forward(obs []int, alpha *mat.Dense, scale []float64) float64 {
	var logLik float64
	for t, o := range obs {
		row := alpha.RawRowView(t)
		if t == 0 {
			for i := range row {
				row[i] = h.start[i] * h.emit.At(i, o)
			}
		} else {
			prev := alpha.RawRowView(t - 1)
			for j := range row {
				var s float64
				for i, a := range prev {
					s += a * h.trans.At(i, j)
				}
				row[j] = s * h.emit.At(j, o)
			}
		}

		c := floats.Sum(row)
		if c == 0 {
			return math.Inf(-1)
		}
		floats.Scale(1/c, row)
		scale[t] = c
		logLik += math.Log(c)
	}
	return logLik
}

// backward fills beta with the backward variables scaled by the forward
// normalizers, so that alpha[t][i]*beta[t][i] is the state posterior.
func (h *HMM) backward(obs []int, scale []float64, beta *mat.Dense) {
	last := len(obs) - 1
	for i := range beta.RawRowView(last) {
		beta.Set(last, i, 1)
	}
	for t := last - 1; t >= 0; t-- {
		next := beta.RawRowView(t + 1)
		row := beta.RawRowView(t)
		o := obs[t+1]
		for i := range row {
			var s float64
			for j, b := range next {
				s += h.trans.At(i, j) * h.emit.At(j, o) * b
			}
			row[i] = s / scale[t+1]
		}
	}
}
