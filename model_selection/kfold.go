// Package model_selection estimates how well a pluggable regression
// algorithm generalizes, by k-fold cross-validation.
package model_selection

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// RandomSource supplies the index draws used to shuffle rows.
// IntN must return a value in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source. The same seed always yields
// the same sequence of folds.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed))
}

// Fold is one partition of a dataset: the source row indices and the rows
// themselves, in drawn order.
type Fold struct {
	Indices []int
	Data    dataset.Dataset
}

// Splitter partitions a dataset into folds.
type Splitter interface {
	Split(ds dataset.Dataset) ([]Fold, error)
}

// KFold implements k-fold cross-validation splitting.
//
// Rows are shuffled with a Fisher-Yates pass over Random, then cut into
// NSplits contiguous chunks of floor(n/NSplits) rows. The n mod NSplits rows
// left at the end of the shuffled order belong to no fold.
type KFold struct {
	NSplits int
	Random  RandomSource
}

// NewKFold creates a new k-fold splitter.
func NewKFold(nSplits int, random RandomSource) *KFold {
	return &KFold{NSplits: nSplits, Random: random}
}

// FoldSize returns the number of rows per fold for n rows.
func (kf *KFold) FoldSize(n int) int {
	if kf.NSplits < 1 {
		return 0
	}
	return n / kf.NSplits
}

// Split draws a fresh partition on every call.
func (kf *KFold) Split(ds dataset.Dataset) ([]Fold, error) {
	n := ds.Len()
	if n == 0 {
		return nil, errors.NewEmptyInputError("KFold.Split")
	}
	if kf.NSplits < 1 || kf.NSplits > n {
		return nil, errors.NewInvalidParameterError("n_splits", "must be between 1 and the number of rows", kf.NSplits)
	}
	if kf.Random == nil {
		return nil, errors.NewInvalidParameterError("random", "a random source is required", nil)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := kf.Random.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	size := n / kf.NSplits
	folds := make([]Fold, kf.NSplits)
	for i := range folds {
		idx := append([]int(nil), indices[i*size:(i+1)*size]...)
		folds[i] = Fold{Indices: idx, Data: ds.Subset(idx)}
	}
	return folds, nil
}
