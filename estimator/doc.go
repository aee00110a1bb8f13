// Package estimator re-estimates HMM parameters from a corpus sampled from a
// known model.
//
// [Estimator.Estimate] draws a corpus of CorpusSize observations from the
// source model, fits a freshly initialised discrete engine to it with
// Baum-Welch, and labels the fitted matrices with the source model's states
// and symbols. [CorpusLoss] scores any model on a corpus as the mean negative
// log-likelihood per observation, which puts the source and fitted models on
// the same scale.
//
// # Usage
//
//	est := estimator.New(estimator.Config{})
//	res, err := est.Estimate(ctx, source)
//	fittedLoss, err := estimator.CorpusLoss(res.Model, res.Corpus)
//	sourceLoss, err := estimator.CorpusLoss(source, res.Corpus)
//
// # Data Requirements
//
// The corpus holds at least two observations. Symbols that never occur in the
// corpus receive zero emission probability in the fitted model.
package estimator
