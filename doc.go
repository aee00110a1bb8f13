// Package hmm models the weather/activity hidden Markov model exercise.
//
// hmm provides labelled parameter records ([Parameters]), their conversion
// into the ordered matrices a numerical engine needs, and a [Model] that
// samples, scores, decodes and compares observation sequences through any
// implementation of the [Engine] interface. The discrete subpackage holds the
// default engine; the estimator subpackage re-estimates parameters from a
// generated corpus.
//
// Basic usage:
//
//	m, err := hmm.NewModel(hmm.SunnyParameters(), discrete.Factory(discrete.Config{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	seq, err := m.Sample(10)
//	d, err := m.Decode(seq)
//	fmt.Printf("%d of %d states recovered\n", d.Correct, seq.Len())
package hmm
