package model_selection

import (
	"fmt"
	"math"
	"time"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/log"
	"github.com/YuminosukeSato/linreg/stats"
)

// Result holds the per-fold scores of one evaluation run, in fold order.
type Result struct {
	Scores []float64
	// MeanRMSE is the arithmetic mean of Scores. The name reflects the
	// default scorer; with WithScorer it is the mean of whichever metric
	// was configured.
	MeanRMSE float64
}

// Std returns the population standard deviation of the scores.
func (r *Result) Std() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	v, err := stats.Variance(r.Scores, r.MeanRMSE)
	if err != nil {
		return 0
	}
	return math.Sqrt(v / float64(len(r.Scores)))
}

func (r *Result) String() string {
	return fmt.Sprintf("Scores: %v\nMean RMSE: %.3f", r.Scores, r.MeanRMSE)
}

// Evaluator runs k-fold cross-validation and aggregates the scores.
type Evaluator struct {
	folds  int
	random RandomSource
	scorer Scorer
	logger log.Logger
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithRandomSource sets the source used to shuffle rows into folds.
func WithRandomSource(src RandomSource) EvaluatorOption {
	return func(e *Evaluator) {
		e.random = src
	}
}

// WithScorer replaces the default RMSE scorer.
func WithScorer(scorer Scorer) EvaluatorOption {
	return func(e *Evaluator) {
		e.scorer = scorer
	}
}

// WithLogger はロガーを差し替える
func WithLogger(logger log.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// NewEvaluator returns an evaluator for k folds. Without WithRandomSource
// the folds are seeded from the clock and differ between runs.
func NewEvaluator(k int, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		folds:  k,
		scorer: stats.RMSE,
		logger: log.GetLoggerWithName("model_selection"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.random == nil {
		e.random = NewRandomSource(uint64(time.Now().UnixNano()))
	}
	return e
}

// Run cross-validates algorithm on ds and returns the scores with their mean.
func (e *Evaluator) Run(ds dataset.Dataset, algorithm Algorithm) (*Result, error) {
	start := time.Now()
	kf := NewKFold(e.folds, e.random)

	scores, err := CrossValidate(ds, algorithm, kf, e.scorer)
	if err != nil {
		e.logger.Error("Cross-validation failed", err,
			log.OperationKey, log.OperationCrossValidate,
			log.FoldsKey, e.folds,
		)
		return nil, err
	}

	for i, s := range scores {
		e.logger.Debug("Fold scored", log.FoldKey, i, log.ScoreKey, s)
	}

	mean, err := stats.Mean(scores)
	if err != nil {
		return nil, err
	}

	size := kf.FoldSize(ds.Len())
	e.logger.Info("Cross-validation finished",
		log.OperationKey, log.OperationCrossValidate,
		log.PhaseKey, log.PhaseValidation,
		log.SamplesKey, ds.Len(),
		log.FoldsKey, e.folds,
		log.FoldSizeKey, size,
		log.DroppedRowsKey, ds.Len()-size*e.folds,
		log.MeanScoreKey, mean,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return &Result{Scores: scores, MeanRMSE: mean}, nil
}
