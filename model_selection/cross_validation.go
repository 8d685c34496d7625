package model_selection

import (
	"fmt"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/stats"
)

// Algorithm fits on train and returns one prediction per row of test.
// The target cells of test are NaN. Hyperparameters are bound by the
// caller, e.g. linear_model.SGD(0.01, 50).
type Algorithm func(train, test dataset.Dataset) ([]float64, error)

// Scorer compares true targets with predictions. Lower is better for the
// error scorers used here, but the harness does not rely on that.
type Scorer func(actual, predicted []float64) (float64, error)

// CrossValidate splits ds once and, for each fold in order, trains
// algorithm on the remaining folds and scores its predictions on the held
// out one. A nil scorer means stats.RMSE.
//
// Panics raised by algorithm are recovered and returned as a PanicError.
func CrossValidate(ds dataset.Dataset, algorithm Algorithm, splitter Splitter, scorer Scorer) ([]float64, error) {
	if algorithm == nil {
		return nil, errors.NewInvalidParameterError("algorithm", "must not be nil", nil)
	}
	if splitter == nil {
		return nil, errors.NewInvalidParameterError("splitter", "must not be nil", nil)
	}
	if scorer == nil {
		scorer = stats.RMSE
	}

	folds, err := splitter.Split(ds)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, 0, len(folds))
	for i := range folds {
		score, err := evaluateFold(i, folds, algorithm, scorer)
		if err != nil {
			return nil, errors.Wrapf(err, "fold %d", i)
		}
		scores = append(scores, score)
	}
	return scores, nil
}

func evaluateFold(i int, folds []Fold, algorithm Algorithm, scorer Scorer) (float64, error) {
	parts := make([]dataset.Dataset, 0, len(folds)-1)
	for j, other := range folds {
		if j != i {
			parts = append(parts, other.Data)
		}
	}
	train, err := dataset.Concat(parts...)
	if err != nil {
		return 0, err
	}
	test := folds[i].Data.WithoutTarget()

	var predicted []float64
	err = errors.SafeExecute(fmt.Sprintf("algorithm on fold %d", i), func() error {
		var algErr error
		predicted, algErr = algorithm(train, test)
		return algErr
	})
	if err != nil {
		return 0, err
	}

	actual := folds[i].Data.Targets()
	if len(predicted) != len(actual) {
		return 0, errors.NewLengthMismatchError("CrossValidate", len(actual), len(predicted))
	}
	return scorer(actual, predicted)
}
