// Package preprocessing rescales datasets column by column before they are
// handed to gradient-based estimators.
package preprocessing

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// MinMax holds the observed range of one column.
type MinMax struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns Max-Min.
func (m MinMax) Span() float64 { return m.Max - m.Min }

// MinMaxTable has one entry per column, the target column included.
type MinMaxTable []MinMax

// ColumnMinMax scans every row and records the min and max of each column.
func ColumnMinMax(ds dataset.Dataset) (MinMaxTable, error) {
	if ds.IsEmpty() {
		return nil, errors.NewEmptyInputError("preprocessing.ColumnMinMax")
	}
	table := make(MinMaxTable, ds.Width())
	for j := range table {
		col := ds.Column(j)
		table[j] = MinMax{Min: floats.Min(col), Max: floats.Max(col)}
	}
	return table, nil
}

// Normalize maps every cell to (v-min)/(max-min) using table.
// A column whose min equals its max cannot be rescaled and yields a
// DegenerateColumnError; no NaN is produced.
func Normalize(ds dataset.Dataset, table MinMaxTable) (dataset.Dataset, error) {
	if err := checkTable("preprocessing.Normalize", ds, table); err != nil {
		return dataset.Dataset{}, err
	}
	for j, mm := range table {
		if mm.Span() == 0 {
			return dataset.Dataset{}, errors.NewDegenerateColumnError("preprocessing.Normalize", j, mm.Min)
		}
	}
	return mapCells(ds, func(j int, v float64) float64 {
		return (v - table[j].Min) / table[j].Span()
	})
}

// Denormalize is the inverse of Normalize: v*(max-min)+min.
func Denormalize(ds dataset.Dataset, table MinMaxTable) (dataset.Dataset, error) {
	if err := checkTable("preprocessing.Denormalize", ds, table); err != nil {
		return dataset.Dataset{}, err
	}
	return mapCells(ds, func(j int, v float64) float64 {
		return v*table[j].Span() + table[j].Min
	})
}

// DenormalizeColumn rescales a single column's values, typically predictions
// of the target, back to original units.
func DenormalizeColumn(values []float64, mm MinMax) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v*mm.Span() + mm.Min
	}
	return out
}

func checkTable(op string, ds dataset.Dataset, table MinMaxTable) error {
	if ds.IsEmpty() {
		return nil
	}
	if len(table) != ds.Width() {
		return errors.NewDimensionError(op, ds.Width(), len(table), 1)
	}
	return nil
}

func mapCells(ds dataset.Dataset, fn func(j int, v float64) float64) (dataset.Dataset, error) {
	rows := ds.Rows()
	for _, row := range rows {
		for j, v := range row {
			row[j] = fn(j, v)
		}
	}
	return dataset.New(rows)
}
