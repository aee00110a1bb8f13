// Package discrete is the default [hmm.Engine]: a hidden Markov model with
// categorical emissions over a finite symbol alphabet, built on gonum.
//
// Scoring uses the scaled forward algorithm, decoding uses Viterbi in log
// space, and Fit runs Baum-Welch on a single observation sequence.
//
// # Usage
//
//	e := discrete.New(2, 3, discrete.Config{MaxIter: 10})
//	if err := e.Fit(ctx, obs); err != nil {
//		return err
//	}
//	logLik, err := e.Score(obs)
//	path, err := e.Predict(obs)
//
// An engine is not safe for concurrent use.
package discrete
