package model_selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/linear_model"
	"github.com/YuminosukeSato/linreg/metrics"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

func noisyLine(n int) dataset.Dataset {
	rows := make([][]float64, n)
	for i := range rows {
		x := float64(i) / float64(n)
		// deterministic wobble around y = 0.3 + 0.5x
		rows[i] = []float64{x, 0.3 + 0.5*x + 0.05*math.Sin(float64(i))}
	}
	return dataset.MustNew(rows)
}

func TestEvaluatorRun(t *testing.T) {
	testLogger, _ := log.NewTestLogger(log.LevelDebug)
	ds := noisyLine(42)

	ev := NewEvaluator(5, WithRandomSource(NewRandomSource(1)), WithLogger(testLogger))
	res, err := ev.Run(ds, linear_model.SGD(0.1, 100))
	require.NoError(t, err)
	require.Len(t, res.Scores, 5)

	sum := 0.0
	for _, s := range res.Scores {
		sum += s
		assert.Less(t, s, 0.1)
	}
	assert.InDelta(t, sum/5, res.MeanRMSE, 1e-12)
	assert.GreaterOrEqual(t, res.Std(), 0.0)
	assert.Contains(t, res.String(), "Mean RMSE: ")

	assert.Equal(t, 5, testLogger.CountMessage("Fold scored"))
	assert.True(t, testLogger.ContainsMessage("Cross-validation finished"))
	assert.True(t, testLogger.ContainsField(log.DroppedRowsKey, 2.0))
	assert.True(t, testLogger.ContainsField(log.FoldSizeKey, 8.0))
}

func TestEvaluatorReproducible(t *testing.T) {
	ds := noisyLine(30)
	algo := linear_model.SGD(0.05, 30)

	a, err := NewEvaluator(3, WithRandomSource(NewRandomSource(99))).Run(ds, algo)
	require.NoError(t, err)
	b, err := NewEvaluator(3, WithRandomSource(NewRandomSource(99))).Run(ds, algo)
	require.NoError(t, err)
	assert.Equal(t, a.Scores, b.Scores)
}

func TestEvaluatorScorerAndErrors(t *testing.T) {
	ds := noisyLine(20)
	ev := NewEvaluator(4, WithRandomSource(NewRandomSource(3)), WithScorer(metrics.MAE))
	res, err := ev.Run(ds, linear_model.SGD(0.1, 50))
	require.NoError(t, err)
	assert.Len(t, res.Scores, 4)

	testLogger, _ := log.NewTestLogger(log.LevelDebug)
	_, err = NewEvaluator(40, WithLogger(testLogger)).Run(ds, linear_model.SGD(0.1, 50))
	assert.Error(t, err)
	assert.True(t, testLogger.ContainsMessage("Cross-validation failed"))
}

func TestResultStd(t *testing.T) {
	r := &Result{Scores: []float64{1, 3}, MeanRMSE: 2}
	assert.InDelta(t, 1.0, r.Std(), 1e-12)
	assert.Equal(t, 0.0, (&Result{}).Std())
	assert.Equal(t, "Scores: [1 3]\nMean RMSE: 2.000", r.String())
}
