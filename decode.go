package hmm

import "fmt"

// Decoding is the result of Viterbi decoding a sampled sequence.
type Decoding struct {
	Sequence  Sequence `json:"sequence"`
	Predicted []int    `json:"predicted"`
	Correct   int      `json:"correct"` // positions where Predicted matches Sequence.States.
}

// Decode computes the most likely hidden-state path for seq and counts how
// many positions agree with the true states. Correct is 0 when seq carries no
// true states.
func (m *Model) Decode(seq Sequence) (Decoding, error) {
	if err := m.checkObservations(seq.Observations); err != nil {
		return Decoding{}, err
	}
	if seq.States != nil {
		if err := m.checkStates(seq.States, seq.Len()); err != nil {
			return Decoding{}, err
		}
	}

	path, err := m.engine.Predict(seq.Observations)
	if err != nil {
		return Decoding{}, err
	}
	if len(path) != seq.Len() {
		return Decoding{}, fmt.Errorf("%w: engine decoded %d states for %d observations",
			ErrInvalidSequence, len(path), seq.Len())
	}

	d := Decoding{Sequence: seq.clone(), Predicted: path}
	if seq.States != nil {
		d.Correct, err = Matches(seq.States, path)
		if err != nil {
			return Decoding{}, err
		}
	}
	return d, nil
}
