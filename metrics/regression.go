// Package metrics provides regression scores. Every function has the
// signature func(actual, predicted []float64) (float64, error) so it can be
// plugged into model_selection as a scorer.
package metrics

import (
	"math"

	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/stats"
)

func checkPair(op string, yTrue, yPred []float64) error {
	if len(yTrue) != len(yPred) {
		return errors.NewLengthMismatchError(op, len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return errors.NewEmptyInputError(op)
	}
	return nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("metrics.MSE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return sum / float64(len(yTrue)), nil
}

// RMSE は二乗平均平方根誤差を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	return stats.RMSE(yTrue, yPred)
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("metrics.MAE", yTrue, yPred); err != nil {
		return 0, err
	}

	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return sum / float64(len(yTrue)), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("metrics.R2Score", yTrue, yPred); err != nil {
		return 0, err
	}

	yMean, err := stats.Mean(yTrue)
	if err != nil {
		return 0, err
	}

	// 全変動（TSS）と残差変動（RSS）を計算
	var tss, rss float64
	for i := range yTrue {
		tss += (yTrue[i] - yMean) * (yTrue[i] - yMean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	if tss == 0 {
		return 0, errors.NewValueError("metrics.R2Score", "total sum of squares is zero (no variance in yTrue)")
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}

// MAPE は平均絶対パーセンテージ誤差を計算する。yTrueが0の要素は除外される。
func MAPE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("metrics.MAPE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MAPE = (100/n) * Σ|yTrue - yPred|/|yTrue|
	var sum float64
	validCount := 0
	for i := range yTrue {
		if yTrue[i] != 0 {
			sum += math.Abs(yTrue[i]-yPred[i]) / math.Abs(yTrue[i])
			validCount++
		}
	}

	if validCount == 0 {
		return 0, errors.NewValueError("metrics.MAPE", "all yTrue values are zero")
	}
	return (sum / float64(validCount)) * 100, nil
}

// ScorerByName maps a CLI-style name to a scorer.
func ScorerByName(name string) (func(yTrue, yPred []float64) (float64, error), error) {
	switch name {
	case "rmse":
		return RMSE, nil
	case "mse":
		return MSE, nil
	case "mae":
		return MAE, nil
	case "mape":
		return MAPE, nil
	case "r2":
		return R2Score, nil
	default:
		return nil, errors.NewInvalidParameterError("scorer", "must be one of rmse, mse, mae, mape, r2", name)
	}
}
