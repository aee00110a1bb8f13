package discrete

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Predict returns the most likely hidden-state path for obs. Among equally
// likely predecessors the lowest state index wins.
func (h *HMM) Predict(obs []int) ([]int, error) {
	if err := h.checkObservations(obs); err != nil {
		return nil, err
	}

	n := len(obs)
	delta := mat.NewDense(n, h.nStates, nil)
	back := make([][]int, n)

	first := delta.RawRowView(0)
	for i := range first {
		first[i] = math.Log(h.start[i]) + math.Log(h.emit.At(i, obs[0]))
	}

	for t := 1; t < n; t++ {
		prev := delta.RawRowView(t - 1)
		row := delta.RawRowView(t)
		back[t] = make([]int, h.nStates)
		for j := range row {
			best, arg := math.Inf(-1), 0
			for i, d := range prev {
				if v := d + math.Log(h.trans.At(i, j)); v > best {
					best, arg = v, i
				}
			}
			row[j] = best + math.Log(h.emit.At(j, obs[t]))
			back[t][j] = arg
		}
	}

	path := make([]int, n)
	path[n-1] = floats.MaxIdx(delta.RawRowView(n - 1))
	for t := n - 1; t > 0; t-- {
		path[t-1] = back[t][path[t]]
	}
	return path, nil
}
