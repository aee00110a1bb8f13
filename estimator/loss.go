package estimator

import (
	"fmt"

	"github.com/sky-flux/hmm"
)

// CorpusLoss returns the mean negative log-likelihood per observation of seq
// under m. Lower is better; an impossible corpus gives +Inf.
func CorpusLoss(m *hmm.Model, seq hmm.Sequence) (float64, error) {
	if seq.Len() == 0 {
		return 0, fmt.Errorf("%w: empty corpus", hmm.ErrInvalidSequence)
	}
	s, err := m.Score(seq.Observations)
	if err != nil {
		return 0, err
	}
	return -s / float64(seq.Len()), nil
}
