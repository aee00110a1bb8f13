package estimator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/golang/glog"

	"github.com/sky-flux/hmm"
	"github.com/sky-flux/hmm/discrete"
)

// ErrCorpusTooSmall is returned when CorpusSize is below 2.
var ErrCorpusTooSmall = errors.New("estimator: corpus must hold at least 2 observations")

// Config configures the estimation run.
// Zero values are replaced with sensible defaults.
type Config struct {
	CorpusSize int `json:"corpus_size"` // default 10000

	// Engine builds the engine that is fitted to the corpus. Nil uses
	// discrete.Factory configured with the four fields below, which are
	// ignored when Engine is set.
	Engine hmm.EngineFactory `json:"-"`

	MaxIter int     `json:"max_iter"` // default 10
	Tol     float64 `json:"tol"`      // default: the engine's

	// Source drives the random initial emissions of the fitted engine.
	// Nil uses the global math/rand/v2 source.
	Source rand.Source `json:"-"`

	// OnIteration is passed to the fitted engine; see discrete.Config.
	OnIteration func(iter int, logLik float64) `json:"-"`
}

// Estimator fits a fresh model to a corpus sampled from a source model.
type Estimator struct {
	corpusSize int
	newEngine  hmm.EngineFactory
}

// Result is the outcome of an estimation run.
type Result struct {
	Model   *hmm.Model   // fitted model, labelled like the source
	Corpus  hmm.Sequence // sampled corpus with its true states
	History []float64    // log-likelihood per EM iteration
}

// New creates an Estimator with the given config.
// Zero-valued fields receive defaults: CorpusSize=10000, MaxIter=10.
func New(cfg Config) *Estimator {
	e := &Estimator{
		corpusSize: cfg.CorpusSize,
		newEngine:  cfg.Engine,
	}
	if e.corpusSize == 0 {
		e.corpusSize = 10000
	}
	if e.newEngine == nil {
		if cfg.MaxIter == 0 {
			cfg.MaxIter = 10
		}
		e.newEngine = discrete.Factory(discrete.Config{
			MaxIter:     cfg.MaxIter,
			Tol:         cfg.Tol,
			Source:      cfg.Source,
			OnIteration: cfg.OnIteration,
		})
	}
	return e
}

// Estimate samples the corpus from source and fits a fresh engine to it. With
// the default engine the run ends after MaxIter iterations or on convergence,
// whichever comes first; reaching the cap is not an error.
//
// Result.History is filled when the engine reports one through a
// History() []float64 method.
//
// Returns ErrCorpusTooSmall if CorpusSize is below 2. The context can be used
// to cancel a long fit.
func (e *Estimator) Estimate(ctx context.Context, source *hmm.Model) (*Result, error) {
	if e.corpusSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrCorpusTooSmall, e.corpusSize)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	corpus, err := source.Sample(e.corpusSize)
	if err != nil {
		return nil, fmt.Errorf("estimator: sample corpus: %w", err)
	}
	glog.V(1).Infof("estimator: sampled corpus of %d observations", corpus.Len())

	states, symbols := source.States(), source.Symbols()
	engine := e.newEngine(len(states), len(symbols))
	if err := engine.Fit(ctx, corpus.Observations); err != nil {
		return nil, fmt.Errorf("estimator: fit: %w", err)
	}

	fitted, err := hmm.FromEngine(states, symbols, engine)
	if err != nil {
		return nil, fmt.Errorf("estimator: label fitted model: %w", err)
	}

	var history []float64
	if h, ok := engine.(interface{ History() []float64 }); ok {
		history = h.History()
	}
	if glog.V(1) && len(history) > 0 {
		glog.Infof("estimator: %d iterations, final log-likelihood %.6f", len(history), history[len(history)-1])
	}
	return &Result{Model: fitted, Corpus: corpus, History: history}, nil
}
