package discrete

import (
	"context"
	"fmt"
	"math"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Fit re-estimates the parameters from obs with the Baum-Welch algorithm.
//
// An engine that was never Set starts from a uniform initial vector and
// transition matrix and random emission rows; otherwise Fit continues from
// the current parameters. It stops after MaxIter iterations or once the
// log-likelihood gain falls below Tol. Every iteration, the last included,
// ends with a re-estimation step. Rows with no expected counts become
// uniform.
//
// Each iteration appends the log-likelihood of the parameters it started
// from to History, so the installed parameters are one step past the last
// recorded value. The context is checked between iterations.
func (h *HMM) Fit(ctx context.Context, obs []int) error {
	if err := h.checkSymbols(obs); err != nil {
		return err
	}
	if !h.ready {
		h.randomInit()
	}

	n := len(obs)
	alpha := mat.NewDense(n, h.nStates, nil)
	beta := mat.NewDense(n, h.nStates, nil)
	scale := make([]float64, n)

	h.history = h.history[:0]
	prev := math.Inf(-1)
	for iter := 1; iter <= h.maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		logLik := h.forward(obs, alpha, scale)
		if math.IsInf(logLik, -1) {
			return fmt.Errorf("%w: iteration %d", ErrZeroLikelihood, iter)
		}
		h.history = append(h.history, logLik)
		if h.onIteration != nil {
			h.onIteration(iter, logLik)
		}

		delta := logLik - prev
		glog.V(1).Infof("discrete: iteration %d log-likelihood %.6f delta %.6f", iter, logLik, delta)
		if delta < 0 {
			glog.Warningf("discrete: log-likelihood decreased by %g at iteration %d", -delta, iter)
		}
		prev = logLik

		h.backward(obs, scale, beta)
		h.reestimate(obs, alpha, beta, scale)
		if delta < h.tol {
			break
		}
	}
	return nil
}

// randomInit installs uniform initial and transition probabilities and
// emission rows drawn from the configured source.
func (h *HMM) randomInit() {
	start := make([]float64, h.nStates)
	for i := range start {
		start[i] = 1 / float64(h.nStates)
	}
	trans := mat.NewDense(h.nStates, h.nStates, nil)
	emit := mat.NewDense(h.nStates, h.nSymbols, nil)
	for i := 0; i < h.nStates; i++ {
		uniform(trans.RawRowView(i))
		row := emit.RawRowView(i)
		for k := range row {
			row[k] = h.randFloat()
		}
		normalize(row)
	}
	h.install(start, trans, emit)
}

// reestimate performs the M-step from the scaled forward and backward
// variables of the current parameters.
func (h *HMM) reestimate(obs []int, alpha, beta *mat.Dense, scale []float64) {
	n := len(obs)
	start := make([]float64, h.nStates)
	trans := mat.NewDense(h.nStates, h.nStates, nil)
	emit := mat.NewDense(h.nStates, h.nSymbols, nil)

	gamma := make([]float64, h.nStates)
	for t, o := range obs {
		a, b := alpha.RawRowView(t), beta.RawRowView(t)
		floats.MulTo(gamma, a, b)
		if t == 0 {
			copy(start, gamma)
		}
		for i, g := range gamma {
			emit.Set(i, o, emit.At(i, o)+g)
		}
		if t == n-1 {
			continue
		}

		next, o1 := beta.RawRowView(t+1), obs[t+1]
		for i := 0; i < h.nStates; i++ {
			row := trans.RawRowView(i)
			for j := range row {
				row[j] += a[i] * h.trans.At(i, j) * h.emit.At(j, o1) * next[j] / scale[t+1]
			}
		}
	}

	normalize(start)
	for i := 0; i < h.nStates; i++ {
		normalize(trans.RawRowView(i))
		normalize(emit.RawRowView(i))
	}
	h.install(start, trans, emit)
}

// normalize scales row to sum to 1, or makes it uniform when it has no mass.
func normalize(row []float64) {
	s := floats.Sum(row)
	if s == 0 || math.IsNaN(s) {
		uniform(row)
		return
	}
	floats.Scale(1/s, row)
}

func uniform(row []float64) {
	for k := range row {
		row[k] = 1 / float64(len(row))
	}
}
