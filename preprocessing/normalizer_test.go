package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/errors"
)

var sample = dataset.MustNew([][]float64{
	{50, 30, 1},
	{20, 90, 3},
	{35, 60, 5},
})

func TestColumnMinMax(t *testing.T) {
	table, err := ColumnMinMax(sample)
	require.NoError(t, err)
	assert.Equal(t, MinMaxTable{{20, 50}, {30, 90}, {1, 5}}, table)

	_, err = ColumnMinMax(dataset.Dataset{})
	var emptyErr *errors.EmptyInputError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestNormalize(t *testing.T) {
	table, err := ColumnMinMax(sample)
	require.NoError(t, err)

	got, err := Normalize(sample, table)
	require.NoError(t, err)
	want := [][]float64{
		{1, 0, 0},
		{0, 1, 0.5},
		{0.5, 0.5, 1},
	}
	for i, row := range want {
		assert.InDeltaSlice(t, row, got.Row(i), 1e-12)
	}

	t.Run("every cell lands in [0,1]", func(t *testing.T) {
		for _, row := range got.Rows() {
			for _, v := range row {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	})

	t.Run("idempotent on its own table", func(t *testing.T) {
		again, err := ColumnMinMax(got)
		require.NoError(t, err)
		twice, err := Normalize(got, again)
		require.NoError(t, err)
		assert.Equal(t, got.Rows(), twice.Rows())
	})

	t.Run("input untouched", func(t *testing.T) {
		assert.Equal(t, 50.0, sample.At(0, 0))
	})
}

func TestNormalizeDegenerateColumn(t *testing.T) {
	ds := dataset.MustNew([][]float64{{1, 7, 2}, {2, 7, 4}})
	table, err := ColumnMinMax(ds)
	require.NoError(t, err)

	_, err = Normalize(ds, table)
	var degenerate *errors.DegenerateColumnError
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, 1, degenerate.Column)
	assert.Equal(t, 7.0, degenerate.Value)
}

func TestNormalizeTableWidth(t *testing.T) {
	_, err := Normalize(sample, MinMaxTable{{0, 1}})
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestDenormalizeRoundTrip(t *testing.T) {
	table, err := ColumnMinMax(sample)
	require.NoError(t, err)
	norm, err := Normalize(sample, table)
	require.NoError(t, err)

	back, err := Denormalize(norm, table)
	require.NoError(t, err)
	for i := 0; i < sample.Len(); i++ {
		assert.InDeltaSlice(t, sample.Row(i), back.Row(i), 1e-9)
	}

	preds := DenormalizeColumn([]float64{0, 0.5, 1}, table[2])
	assert.Equal(t, []float64{1, 3, 5}, preds)
	assert.False(t, math.IsNaN(preds[0]))
}
