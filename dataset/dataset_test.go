package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

func TestNew(t *testing.T) {
	t.Run("copies rows", func(t *testing.T) {
		rows := [][]float64{{1, 2}, {3, 4}}
		ds, err := New(rows)
		require.NoError(t, err)

		rows[0][0] = 99
		assert.Equal(t, 1.0, ds.At(0, 0))
		assert.Equal(t, 2, ds.Len())
		assert.Equal(t, 2, ds.Width())
		assert.Equal(t, 1, ds.NumPredictors())
	})

	t.Run("empty", func(t *testing.T) {
		ds, err := New(nil)
		require.NoError(t, err)
		assert.True(t, ds.IsEmpty())
		assert.Equal(t, 0, ds.NumPredictors())
		assert.Nil(t, ds.Targets())
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := New([][]float64{{1, 2, 3}, {1, 2}})
		var dimErr *errors.DimensionError
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 3, dimErr.Expected)
		assert.Equal(t, 2, dimErr.Got)
	})

	t.Run("too narrow", func(t *testing.T) {
		_, err := New([][]float64{{1}, {2}})
		var paramErr *errors.InvalidParameterError
		assert.True(t, errors.As(err, &paramErr))
	})

	t.Run("MustNew panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNew([][]float64{{1}}) })
	})
}

func TestViews(t *testing.T) {
	ds := MustNew([][]float64{
		{1, 10, 100},
		{2, 20, 200},
		{3, 30, 300},
	})

	assert.Equal(t, []float64{10, 20, 30}, ds.Column(1))
	assert.Equal(t, []float64{100, 200, 300}, ds.Targets())

	row := ds.Row(1)
	row[0] = -1
	assert.Equal(t, 2.0, ds.At(1, 0), "Row must return a copy")

	sub := ds.Subset([]int{2, 0})
	assert.Equal(t, [][]float64{{3, 30, 300}, {1, 10, 100}}, sub.Rows())

	blank := ds.WithoutTarget()
	for i := 0; i < blank.Len(); i++ {
		assert.True(t, math.IsNaN(blank.At(i, 2)))
		assert.Equal(t, ds.At(i, 0), blank.At(i, 0))
	}
	assert.Equal(t, 100.0, ds.At(0, 2), "original is untouched")
}

func TestConcat(t *testing.T) {
	a := MustNew([][]float64{{1, 2}})
	b := MustNew([][]float64{{3, 4}, {5, 6}})

	got, err := Concat(a, Dataset{}, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, got.Rows())

	empty, err := Concat()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = Concat(a, MustNew([][]float64{{1, 2, 3}}))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestMatrixBridge(t *testing.T) {
	ds := MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})

	m := ds.Matrix()
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 5.0, m.At(1, 1))

	X, y, err := ds.XY()
	require.NoError(t, err)
	_, xc := X.Dims()
	assert.Equal(t, 2, xc)
	assert.Equal(t, 6.0, y.AtVec(1))

	back, err := FromMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, ds.Rows(), back.Rows())

	_, _, err = Dataset{}.XY()
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}
