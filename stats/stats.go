// Package stats provides the numeric primitives shared by the regression
// and evaluation code: mean, sum-of-squares variance, covariance and RMSE.
//
// Every function is pure. Empty inputs and mismatched pairs are reported as
// errors instead of producing NaN from a division by zero.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// Reduce folds values from the left starting at init.
func Reduce[T, A any](values []T, init A, fn func(acc A, v T) A) A {
	acc := init
	for _, v := range values {
		acc = fn(acc, v)
	}
	return acc
}

// Sum returns the sum of values; 0 for an empty slice.
func Sum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.NewEmptyInputError("stats.Mean")
	}
	return Sum(values) / float64(len(values)), nil
}

// Variance returns the sum of squared deviations from mean.
// It is not divided by n, so that Covariance/Variance is the OLS slope.
func Variance(values []float64, mean float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.NewEmptyInputError("stats.Variance")
	}
	return Reduce(values, 0.0, func(acc, v float64) float64 {
		d := v - mean
		return acc + d*d
	}), nil
}

// Covariance returns Σ (x[i]-meanX)(y[i]-meanY).
func Covariance(x []float64, meanX float64, y []float64, meanY float64) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.NewLengthMismatchError("stats.Covariance", len(x), len(y))
	}
	if len(x) == 0 {
		return 0, errors.NewEmptyInputError("stats.Covariance")
	}
	var cov float64
	for i := range x {
		cov += (x[i] - meanX) * (y[i] - meanY)
	}
	return cov, nil
}

// RMSE returns sqrt(mean((predicted[i]-actual[i])^2)).
func RMSE(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, errors.NewLengthMismatchError("stats.RMSE", len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, errors.NewEmptyInputError("stats.RMSE")
	}
	var sumSq float64
	for i := range actual {
		d := predicted[i] - actual[i]
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(actual))), nil
}

// SimpleCoefficients estimates y = intercept + slope*x by ordinary least squares.
func SimpleCoefficients(x, y []float64) (intercept, slope float64, err error) {
	if len(x) != len(y) {
		return 0, 0, errors.NewLengthMismatchError("stats.SimpleCoefficients", len(x), len(y))
	}
	meanX, err := Mean(x)
	if err != nil {
		return 0, 0, err
	}
	meanY, err := Mean(y)
	if err != nil {
		return 0, 0, err
	}
	cov, err := Covariance(x, meanX, y, meanY)
	if err != nil {
		return 0, 0, err
	}
	variance, err := Variance(x, meanX)
	if err != nil {
		return 0, 0, err
	}
	if variance == 0 {
		return 0, 0, errors.NewDegenerateColumnError("stats.SimpleCoefficients", 0, x[0])
	}
	slope = cov / variance
	intercept = meanY - slope*meanX
	return intercept, slope, nil
}
