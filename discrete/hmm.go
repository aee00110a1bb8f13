package discrete

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sky-flux/hmm"
)

// rowTolerance is the accepted deviation of a probability row sum from 1.
const rowTolerance = 1e-8

// Config configures an engine.
// Zero values are replaced with sensible defaults.
type Config struct {
	MaxIter int     `json:"max_iter"` // default 10
	Tol     float64 `json:"tol"`      // default 1e-2

	// Source drives sampling and the random initial emissions of Fit.
	// Nil uses the global math/rand/v2 source.
	Source rand.Source `json:"-"`

	// OnIteration, when set, is called after every Fit iteration with the
	// 1-based iteration number and the log-likelihood reached.
	OnIteration func(iter int, logLik float64) `json:"-"`
}

// HMM is a discrete hidden Markov model.
type HMM struct {
	nStates  int
	nSymbols int

	maxIter     int
	tol         float64
	rng         *rand.Rand
	src         rand.Source
	onIteration func(int, float64)

	ready bool
	start []float64
	trans *mat.Dense
	emit  *mat.Dense

	startDist distuv.Categorical
	transDist []distuv.Categorical
	emitDist  []distuv.Categorical

	history []float64
}

var _ hmm.Engine = (*HMM)(nil)

// New creates an engine with nStates hidden states and nSymbols observation
// symbols. The engine holds no parameters until Set or Fit is called.
// Zero-valued Config fields receive defaults: MaxIter=10, Tol=1e-2.
//
// New panics if nStates or nSymbols is not positive.
func New(nStates, nSymbols int, cfg Config) *HMM {
	if nStates < 1 || nSymbols < 1 {
		panic(fmt.Sprintf("discrete: New with %d states and %d symbols", nStates, nSymbols))
	}
	h := &HMM{
		nStates:     nStates,
		nSymbols:    nSymbols,
		maxIter:     cfg.MaxIter,
		tol:         cfg.Tol,
		src:         cfg.Source,
		onIteration: cfg.OnIteration,
	}
	if h.maxIter == 0 {
		h.maxIter = 10
	}
	if h.tol == 0 {
		h.tol = 1e-2
	}
	if h.src != nil {
		h.rng = rand.New(h.src)
	}
	return h
}

// Factory returns an [hmm.EngineFactory] that builds engines with cfg.
func Factory(cfg Config) hmm.EngineFactory {
	return func(nStates, nSymbols int) hmm.Engine {
		return New(nStates, nSymbols, cfg)
	}
}

// Set installs the initial vector, the transition matrix and the emission
// matrix. Every row must be non-negative and sum to 1 within 1e-8.
// Set clears the Fit history.
func (h *HMM) Set(start []float64, trans, emit mat.Matrix) error {
	if len(start) != h.nStates {
		return fmt.Errorf("%w: initial vector has %d entries, want %d", ErrDimensionMismatch, len(start), h.nStates)
	}
	if r, c := trans.Dims(); r != h.nStates || c != h.nStates {
		return fmt.Errorf("%w: transition is %dx%d, want %dx%d", ErrDimensionMismatch, r, c, h.nStates, h.nStates)
	}
	if r, c := emit.Dims(); r != h.nStates || c != h.nSymbols {
		return fmt.Errorf("%w: emission is %dx%d, want %dx%d", ErrDimensionMismatch, r, c, h.nStates, h.nSymbols)
	}

	s := slices.Clone(start)
	t := mat.DenseCopyOf(trans)
	e := mat.DenseCopyOf(emit)

	if err := checkRow("initial", s); err != nil {
		return err
	}
	for i := 0; i < h.nStates; i++ {
		if err := checkRow(fmt.Sprintf("transition row %d", i), t.RawRowView(i)); err != nil {
			return err
		}
		if err := checkRow(fmt.Sprintf("emission row %d", i), e.RawRowView(i)); err != nil {
			return err
		}
	}

	h.install(s, t, e)
	h.history = nil
	return nil
}

func checkRow(name string, row []float64) error {
	for k, v := range row {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s entry %d = %v", ErrInvalidParameters, name, k, v)
		}
	}
	if sum := floats.Sum(row); math.Abs(sum-1) > rowTolerance {
		return fmt.Errorf("%w: %s sums to %v", ErrInvalidParameters, name, sum)
	}
	return nil
}

// install takes ownership of the parameters and rebuilds the samplers.
func (h *HMM) install(start []float64, trans, emit *mat.Dense) {
	h.start = start
	h.trans = trans
	h.emit = emit

	h.startDist = distuv.NewCategorical(start, h.src)
	h.transDist = make([]distuv.Categorical, h.nStates)
	h.emitDist = make([]distuv.Categorical, h.nStates)
	for i := 0; i < h.nStates; i++ {
		h.transDist[i] = distuv.NewCategorical(trans.RawRowView(i), h.src)
		h.emitDist[i] = distuv.NewCategorical(emit.RawRowView(i), h.src)
	}
	h.ready = true
}

// Params returns copies of the current parameters, or nils before Set or Fit.
func (h *HMM) Params() (start []float64, trans, emit *mat.Dense) {
	if !h.ready {
		return nil, nil, nil
	}
	return slices.Clone(h.start), mat.DenseCopyOf(h.trans), mat.DenseCopyOf(h.emit)
}

// History returns the log-likelihood reached at each iteration of the last Fit.
func (h *HMM) History() []float64 {
	return slices.Clone(h.history)
}

// Sample draws n observations and the hidden states that produced them.
func (h *HMM) Sample(n int) (obs, states []int, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if !h.ready {
		return nil, nil, ErrNotInitialized
	}

	obs = make([]int, n)
	states = make([]int, n)
	s := int(h.startDist.Rand())
	for t := 0; t < n; t++ {
		states[t] = s
		obs[t] = int(h.emitDist[s].Rand())
		if t < n-1 {
			s = int(h.transDist[s].Rand())
		}
	}
	return obs, states, nil
}

func (h *HMM) checkObservations(obs []int) error {
	if !h.ready {
		return ErrNotInitialized
	}
	return h.checkSymbols(obs)
}

func (h *HMM) checkSymbols(obs []int) error {
	if len(obs) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidObservation)
	}
	for t, o := range obs {
		if o < 0 || o >= h.nSymbols {
			return fmt.Errorf("%w: position %d holds %d, want [0, %d)", ErrInvalidObservation, t, o, h.nSymbols)
		}
	}
	return nil
}

// randFloat draws from the configured source, or the global one.
func (h *HMM) randFloat() float64 {
	if h.rng == nil {
		return rand.Float64()
	}
	return h.rng.Float64()
}
