// Package dataset holds the row-oriented numeric table consumed by every
// estimator: each row has the same width, the last field is the target and
// the preceding fields are predictors.
package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// Dataset is an immutable table of float64 rows.
// The zero value is an empty dataset.
type Dataset struct {
	rows  [][]float64
	width int
}

// New validates rows and returns a Dataset holding a deep copy of them.
// An empty input yields an empty Dataset; otherwise every row must have the
// same width, and that width must be at least 2.
func New(rows [][]float64) (Dataset, error) {
	if len(rows) == 0 {
		return Dataset{}, nil
	}
	width := len(rows[0])
	if width < 2 {
		return Dataset{}, errors.NewInvalidParameterError("rows", "need at least one predictor and a target column", width)
	}
	copied := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Dataset{}, errors.Wrapf(errors.NewDimensionError("dataset.New", width, len(row), 1), "row %d", i)
		}
		copied[i] = append([]float64(nil), row...)
	}
	return Dataset{rows: copied, width: width}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// literal tables.
func MustNew(rows [][]float64) Dataset {
	ds, err := New(rows)
	if err != nil {
		panic(err)
	}
	return ds
}

// Len returns the number of rows.
func (d Dataset) Len() int { return len(d.rows) }

// Width returns the number of fields per row, target included.
func (d Dataset) Width() int { return d.width }

// NumPredictors returns Width()-1.
func (d Dataset) NumPredictors() int {
	if d.width == 0 {
		return 0
	}
	return d.width - 1
}

// IsEmpty reports whether the dataset has no rows.
func (d Dataset) IsEmpty() bool { return len(d.rows) == 0 }

// Row returns a copy of row i.
func (d Dataset) Row(i int) []float64 {
	return append([]float64(nil), d.rows[i]...)
}

// RowView returns row i without copying. Callers must not modify it.
func (d Dataset) RowView(i int) []float64 { return d.rows[i] }

// Rows returns a deep copy of all rows.
func (d Dataset) Rows() [][]float64 {
	out := make([][]float64, len(d.rows))
	for i := range d.rows {
		out[i] = d.Row(i)
	}
	return out
}

// At returns the value at row i, column j.
func (d Dataset) At(i, j int) float64 { return d.rows[i][j] }

// Column returns a copy of column j.
func (d Dataset) Column(j int) []float64 {
	col := make([]float64, len(d.rows))
	for i, row := range d.rows {
		col[i] = row[j]
	}
	return col
}

// Targets returns the last column.
func (d Dataset) Targets() []float64 {
	if d.width == 0 {
		return nil
	}
	return d.Column(d.width - 1)
}

// Subset returns the rows at indices, in that order.
func (d Dataset) Subset(indices []int) Dataset {
	rows := make([][]float64, len(indices))
	for i, idx := range indices {
		rows[i] = d.Row(idx)
	}
	return Dataset{rows: rows, width: d.width}
}

// WithoutTarget returns a copy whose target cells are NaN, so the rows can
// be handed to an algorithm without leaking the answer.
func (d Dataset) WithoutTarget() Dataset {
	blanked := Dataset{rows: d.Rows(), width: d.width}
	for _, row := range blanked.rows {
		row[d.width-1] = math.NaN()
	}
	return blanked
}

// Concat appends the rows of parts in order. All non-empty parts must have
// the same width.
func Concat(parts ...Dataset) (Dataset, error) {
	var out Dataset
	for i, p := range parts {
		if p.IsEmpty() {
			continue
		}
		if out.width == 0 {
			out.width = p.width
		} else if p.width != out.width {
			return Dataset{}, errors.Wrapf(errors.NewDimensionError("dataset.Concat", out.width, p.width, 1), "part %d", i)
		}
		for j := range p.rows {
			out.rows = append(out.rows, p.Row(j))
		}
	}
	return out, nil
}

// Matrix returns the whole table as a dense matrix.
func (d Dataset) Matrix() *mat.Dense {
	if d.IsEmpty() {
		return &mat.Dense{}
	}
	m := mat.NewDense(len(d.rows), d.width, nil)
	for i, row := range d.rows {
		m.SetRow(i, row)
	}
	return m
}

// XY splits the table into a predictor matrix and a target column vector.
func (d Dataset) XY() (*mat.Dense, *mat.VecDense, error) {
	if d.IsEmpty() {
		return nil, nil, errors.NewEmptyInputError("dataset.XY")
	}
	p := d.NumPredictors()
	X := mat.NewDense(len(d.rows), p, nil)
	y := mat.NewVecDense(len(d.rows), nil)
	for i, row := range d.rows {
		X.SetRow(i, row[:p])
		y.SetVec(i, row[p])
	}
	return X, y, nil
}

// FromMatrix builds a Dataset from the rows of m.
func FromMatrix(m mat.Matrix) (Dataset, error) {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = mat.Row(nil, i, m)
	}
	if c < 2 && r > 0 {
		return Dataset{}, errors.NewInvalidParameterError("m", "need at least one predictor and a target column", c)
	}
	return Dataset{rows: rows, width: c}, nil
}
