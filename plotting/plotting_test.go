package plotting

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestFoldScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.png")
	require.NoError(t, FoldScores([]float64{0.13, 0.12, 0.14, 0.125, 0.128}, path))
	assertPNG(t, path)

	err := FoldScores(nil, path)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	assert.Error(t, FoldScores([]float64{0.1, math.NaN()}, filepath.Join(t.TempDir(), "nan.png")))
}

func TestRegressionLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.png")
	x := []float64{1, 2, 4, 3, 5}
	y := []float64{1, 3, 3, 2, 5}
	require.NoError(t, RegressionLine(x, y, 0.4, 0.8, path))
	assertPNG(t, path)

	err := RegressionLine(x, y[:2], 0, 1, path)
	var lenErr *errors.LengthMismatchError
	assert.True(t, errors.As(err, &lenErr))

	err = RegressionLine(nil, nil, 0, 1, path)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}
