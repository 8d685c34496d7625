package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/errors"
)

var textbook = dataset.MustNew([][]float64{{1, 1}, {2, 3}, {4, 3}, {3, 2}, {5, 5}})

func TestSimpleLinearRegression(t *testing.T) {
	reg := NewSimpleLinearRegression()
	_, err := reg.Predict(textbook)
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))

	require.NoError(t, reg.Fit(textbook))
	assert.InDelta(t, 0.8, reg.Slope(), 1e-12)
	assert.InDelta(t, 0.4, reg.Intercept(), 1e-12)

	preds, err := reg.Predict(textbook.WithoutTarget())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.2, 2.0, 3.6, 2.8, 4.4}, preds, 1e-12)

	err = reg.Fit(dataset.MustNew([][]float64{{1, 2, 3}}))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	err = reg.Fit(dataset.MustNew([][]float64{{2, 1}, {2, 3}}))
	var degenerate *errors.DegenerateColumnError
	assert.True(t, errors.As(err, &degenerate))
}

func TestLinearRegressionMatchesSimple(t *testing.T) {
	reg := NewLinearRegression()
	require.NoError(t, reg.Fit(textbook))
	assert.InDelta(t, 0.4, reg.Intercept(), 1e-9)
	assert.InDeltaSlice(t, []float64{0.8}, reg.Coefficients(), 1e-9)
}

func TestLinearRegressionMultivariate(t *testing.T) {
	ds := createBenchmarkData(200, 3)
	reg := NewLinearRegression()
	require.NoError(t, reg.Fit(ds))

	assert.InDelta(t, 1.0, reg.Intercept(), 0.05)
	assert.InDeltaSlice(t, []float64{0.5, 1.0, 1.5}, reg.Coefficients(), 0.05)

	r2, err := reg.Score(ds)
	require.NoError(t, err)
	assert.Greater(t, r2, 0.99)

	preds, err := reg.FitPredict(ds, ds.WithoutTarget())
	require.NoError(t, err)
	assert.Len(t, preds, ds.Len())

	_, err = reg.Predict(textbook)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestLinearRegressionSingular(t *testing.T) {
	// 2列目が1列目の2倍なので X^T X は特異行列
	ds := dataset.MustNew([][]float64{{1, 2, 3}, {2, 4, 5}, {3, 6, 8}})
	err := NewLinearRegression().Fit(ds)
	assert.True(t, errors.Is(err, errors.ErrSingularMatrix))

	err = NewLinearRegression().Fit(dataset.Dataset{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestLinearRegressionWeights(t *testing.T) {
	reg := NewLinearRegression()
	require.NoError(t, reg.Fit(textbook))
	w, err := reg.Weights()
	require.NoError(t, err)

	restored := NewLinearRegression()
	require.NoError(t, restored.SetWeights(w))
	a, err := reg.Predict(textbook)
	require.NoError(t, err)
	b, err := restored.Predict(textbook)
	require.NoError(t, err)
	assert.InDeltaSlice(t, a, b, 1e-12)
}

func TestSimpleLinearRegressionWeights(t *testing.T) {
	reg := NewSimpleLinearRegression()
	_, err := reg.Weights()
	assert.Error(t, err)

	require.NoError(t, reg.Fit(textbook))
	w, err := reg.Weights()
	require.NoError(t, err)
	assert.Equal(t, "SimpleLinearRegression", w.ModelType)

	restored := NewSimpleLinearRegression()
	require.NoError(t, restored.SetWeights(w))
	assert.InDelta(t, 0.8, restored.Slope(), 1e-12)

	w.ModelType = "LinearRegression"
	assert.Error(t, restored.SetWeights(w))
}
