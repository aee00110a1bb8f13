package hmm

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"
)

// Model binds labelled parameters to a configured Engine.
type Model struct {
	params Parameters
	engine Engine
}

// NewModel validates p, converts it into matrices and installs them in an
// engine constructed by newEngine.
func NewModel(p Parameters, newEngine EngineFactory) (*Model, error) {
	start, trans, emit, err := p.Matrices()
	if err != nil {
		return nil, err
	}
	if glog.V(2) {
		glog.Infof("hmm: building model for states %v and symbols %v\n%s",
			p.States, p.Symbols, spew.Sdump(start, trans.RawMatrix().Data, emit.RawMatrix().Data))
	}

	e := newEngine(len(p.States), len(p.Symbols))
	if err := e.Set(start, trans, emit); err != nil {
		return nil, fmt.Errorf("hmm: configure engine: %w", err)
	}
	return &Model{params: p.Clone(), engine: e}, nil
}

// FromEngine wraps an engine that already holds parameters, typically one
// returned by Fit, and labels its matrices with states and symbols.
func FromEngine(states, symbols []string, e Engine) (*Model, error) {
	start, trans, emit := e.Params()
	if start == nil || trans == nil || emit == nil {
		return nil, fmt.Errorf("%w: engine holds no parameters", ErrDimensionMismatch)
	}
	p, err := ParametersFromMatrices(states, symbols, start, trans, emit)
	if err != nil {
		return nil, err
	}
	return &Model{params: p, engine: e}, nil
}

// Parameters returns a copy of the labelled parameters the model was built
// from, or read from the engine by FromEngine.
func (m *Model) Parameters() Parameters {
	return m.params.Clone()
}

// States returns the ordered hidden-state labels.
func (m *Model) States() []string {
	return slices.Clone(m.params.States)
}

// Symbols returns the ordered observation labels.
func (m *Model) Symbols() []string {
	return slices.Clone(m.params.Symbols)
}

// Engine returns the engine backing the model.
func (m *Model) Engine() Engine {
	return m.engine
}

// Sample draws a sequence of exactly n observations together with the hidden
// states that generated them.
func (m *Model) Sample(n int) (Sequence, error) {
	if n < 1 {
		return Sequence{}, fmt.Errorf("%w: length %d must be positive", ErrInvalidSequence, n)
	}
	obs, states, err := m.engine.Sample(n)
	if err != nil {
		return Sequence{}, err
	}
	if len(obs) != n || len(states) != n {
		return Sequence{}, fmt.Errorf("%w: engine returned %d observations and %d states, want %d",
			ErrInvalidSequence, len(obs), len(states), n)
	}
	return Sequence{Observations: obs, States: states}, nil
}

// Score returns the natural-log likelihood of obs under the model.
func (m *Model) Score(obs []int) (float64, error) {
	if err := m.checkObservations(obs); err != nil {
		return 0, err
	}
	return m.engine.Score(obs)
}

// Likelihood returns the probability of obs under the model.
func (m *Model) Likelihood(obs []int) (float64, error) {
	s, err := m.Score(obs)
	if err != nil {
		return 0, err
	}
	return math.Exp(s), nil
}

// Encode converts symbol labels into observation indices.
func (m *Model) Encode(symbols []string) ([]int, error) {
	obs := make([]int, len(symbols))
	for i, s := range symbols {
		k := slices.Index(m.params.Symbols, s)
		if k < 0 {
			return nil, fmt.Errorf("%w: symbol %q", ErrUnknownLabel, s)
		}
		obs[i] = k
	}
	return obs, nil
}

// Steps labels each position of seq with its symbol and, when the states are
// known, its hidden state.
func (m *Model) Steps(seq Sequence) ([]Step, error) {
	if err := m.checkObservations(seq.Observations); err != nil {
		return nil, err
	}
	if seq.States != nil {
		if err := m.checkStates(seq.States, seq.Len()); err != nil {
			return nil, err
		}
	}
	steps := make([]Step, seq.Len())
	for i, o := range seq.Observations {
		steps[i] = Step{Index: i, Symbol: m.params.Symbols[o]}
		if seq.States != nil {
			steps[i].State = m.params.States[seq.States[i]]
		}
	}
	return steps, nil
}

func (m *Model) checkObservations(obs []int) error {
	if len(obs) == 0 {
		return fmt.Errorf("%w: no observations", ErrInvalidSequence)
	}
	for i, o := range obs {
		if o < 0 || o >= len(m.params.Symbols) {
			return fmt.Errorf("%w: observation %d = %d, want [0, %d)", ErrInvalidSequence, i, o, len(m.params.Symbols))
		}
	}
	return nil
}

func (m *Model) checkStates(states []int, n int) error {
	if len(states) != n {
		return fmt.Errorf("%w: %d states for %d observations", ErrInvalidSequence, len(states), n)
	}
	for i, s := range states {
		if s < 0 || s >= len(m.params.States) {
			return fmt.Errorf("%w: state %d = %d, want [0, %d)", ErrInvalidSequence, i, s, len(m.params.States))
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. A model serializes as its labelled
// parameters.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.params)
}
