// Package linear_model fits linear regression coefficients by stochastic
// gradient descent.
//
// The plain functions (Predict, FitCoefficients, FitPredict, SGD) are what the
// cross-validation harness plugs in; SGDRegressor wraps the same update rule
// in an estimator with logging, loss history and weight persistence.
package linear_model

import (
	"math"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// Coefficients holds the intercept at index 0 followed by one weight per
// predictor.
type Coefficients []float64

// Intercept returns c[0].
func (c Coefficients) Intercept() float64 { return c[0] }

// Weights returns the per-predictor weights, without the intercept.
func (c Coefficients) Weights() []float64 { return append([]float64(nil), c[1:]...) }

// Predict returns c[0] + Σ c[i+1]*row[i] over the len(c)-1 predictors.
// Fields of row past the predictors, usually the target, are ignored.
func Predict(row []float64, c Coefficients) (float64, error) {
	if len(c) == 0 {
		return 0, errors.NewInvalidParameterError("coefficients", "must contain at least the intercept", 0)
	}
	p := len(c) - 1
	if len(row) < p {
		return 0, errors.NewDimensionError("linear_model.Predict", p, len(row), 1)
	}
	yhat := c[0]
	for i := 0; i < p; i++ {
		yhat += c[i+1] * row[i]
	}
	return yhat, nil
}

// FitCoefficients estimates coefficients from zero by nEpoch passes of
// per-row gradient descent over train, in row order:
//
//	err  = predict(row) - target
//	c[0] = c[0] - learningRate*err
//	c[i+1] = c[i+1] - learningRate*err*row[i]
//
// There is no convergence check. Diverging runs return their non-finite
// coefficients unchanged and report a NumericalInstabilityError through
// errors.Warn.
func FitCoefficients(train dataset.Dataset, learningRate float64, nEpoch int) (Coefficients, error) {
	return fit(train, learningRate, nEpoch, nil)
}

// FitPredict fits on train and returns one prediction per row of test.
// The target field of test rows is never read.
func FitPredict(train, test dataset.Dataset, learningRate float64, nEpoch int) ([]float64, error) {
	coef, err := FitCoefficients(train, learningRate, nEpoch)
	if err != nil {
		return nil, err
	}
	return predictAll(test, coef)
}

// SGD binds the hyperparameters and returns a fit-then-predict function
// with the signature model_selection.CrossValidate expects.
func SGD(learningRate float64, nEpoch int) func(train, test dataset.Dataset) ([]float64, error) {
	return func(train, test dataset.Dataset) ([]float64, error) {
		return FitPredict(train, test, learningRate, nEpoch)
	}
}

func validateParams(learningRate float64, nEpoch int) error {
	if !(learningRate > 0) || math.IsInf(learningRate, 1) {
		return errors.NewInvalidParameterError("learning_rate", "must be a positive finite number", learningRate)
	}
	if nEpoch < 1 {
		return errors.NewInvalidParameterError("n_epoch", "must be at least 1", nEpoch)
	}
	return nil
}

// fit runs the update rule. onEpoch, if set, receives the mean squared
// error of the updates made during each epoch.
func fit(train dataset.Dataset, learningRate float64, nEpoch int, onEpoch func(epoch int, mse float64)) (Coefficients, error) {
	if err := validateParams(learningRate, nEpoch); err != nil {
		return nil, err
	}
	if train.IsEmpty() {
		return nil, errors.NewEmptyInputError("linear_model.FitCoefficients")
	}

	p := train.NumPredictors()
	coef := make(Coefficients, p+1)
	for epoch := 0; epoch < nEpoch; epoch++ {
		sumSquared := 0.0
		for i := 0; i < train.Len(); i++ {
			row := train.RowView(i)
			yhat, err := Predict(row, coef)
			if err != nil {
				return nil, err
			}
			e := yhat - row[p]
			sumSquared += e * e
			coef[0] -= learningRate * e
			for j := 0; j < p; j++ {
				coef[j+1] -= learningRate * e * row[j]
			}
		}
		if onEpoch != nil {
			onEpoch(epoch, sumSquared/float64(train.Len()))
		}
	}

	if err := errors.CheckNumericalStability("sgd_fit", append([]float64(nil), coef...), nEpoch); err != nil {
		errors.Warn(err)
	}
	return coef, nil
}

func predictAll(ds dataset.Dataset, coef Coefficients) ([]float64, error) {
	preds := make([]float64, ds.Len())
	for i := range preds {
		yhat, err := Predict(ds.RowView(i), coef)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		preds[i] = yhat
	}
	return preds, nil
}
