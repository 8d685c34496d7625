package preprocessing

import (
	"fmt"
	"math"
	"strings"

	"github.com/YuminosukeSato/linreg/core/model"
	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

// MinMaxScaler はデータを各列の[0, 1]範囲にスケーリングする
//
// 目的変数の列も含めてすべての列を変換する。
//
// 使用例:
//
//	scaler := preprocessing.NewMinMaxScaler()
//	scaled, err := scaler.FitTransform(ds)
//	// ... 予測 ...
//	original := preprocessing.DenormalizeColumn(preds, scaler.Table()[ds.Width()-1])
type MinMaxScaler struct {
	state  *model.StateManager
	table  MinMaxTable
	logger log.Logger
}

// NewMinMaxScaler は新しいMinMaxScalerを作成する
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{
		state:  model.NewStateManager("MinMaxScaler"),
		logger: log.GetLoggerWithName("preprocessing").With(log.ModelNameKey, "MinMaxScaler"),
	}
}

// Fit は訓練データから各列の最小値と最大値を学習する
func (m *MinMaxScaler) Fit(ds dataset.Dataset) error {
	table, err := ColumnMinMax(ds)
	if err != nil {
		return err
	}
	m.table = table
	m.state.MarkFitted(ds.Width(), ds.Len())
	m.logger.Debug("Scaler fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, ds.Len(),
		log.FeaturesKey, ds.NumPredictors(),
	)
	return nil
}

// Transform は学習済みの範囲でデータを正規化する
func (m *MinMaxScaler) Transform(ds dataset.Dataset) (dataset.Dataset, error) {
	if err := m.state.RequireFitted("Transform"); err != nil {
		return dataset.Dataset{}, err
	}
	return Normalize(ds, m.table)
}

// FitTransform はFitとTransformを順に実行する
func (m *MinMaxScaler) FitTransform(ds dataset.Dataset) (dataset.Dataset, error) {
	if err := m.Fit(ds); err != nil {
		return dataset.Dataset{}, err
	}
	return m.Transform(ds)
}

// InverseTransform は正規化されたデータを元のスケールに戻す
func (m *MinMaxScaler) InverseTransform(ds dataset.Dataset) (dataset.Dataset, error) {
	if err := m.state.RequireFitted("InverseTransform"); err != nil {
		return dataset.Dataset{}, err
	}
	return Denormalize(ds, m.table)
}

// Table は学習した最小値・最大値のコピーを返す
func (m *MinMaxScaler) Table() MinMaxTable {
	return append(MinMaxTable(nil), m.table...)
}

// IsFitted reports whether Fit has succeeded.
func (m *MinMaxScaler) IsFitted() bool { return m.state.IsFitted() }

// String はスケーラーの文字列表現を返す
func (m *MinMaxScaler) String() string {
	if !m.state.IsFitted() {
		return "MinMaxScaler()"
	}
	parts := make([]string, len(m.table))
	for i, mm := range m.table {
		parts[i] = fmt.Sprintf("[%g, %g]", mm.Min, mm.Max)
	}
	return fmt.Sprintf("MinMaxScaler(ranges=%s)", strings.Join(parts, " "))
}

// StandardScaler はデータを平均0、標準偏差1に変換する
//
// 標準偏差は母標準偏差（nで割る）を使う。標準偏差が0の列は
// DegenerateColumnErrorとしてFitが失敗する。
type StandardScaler struct {
	state  *model.StateManager
	Mean   []float64
	Scale  []float64
	logger log.Logger
}

// NewStandardScaler は新しいStandardScalerを作成する
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{
		state:  model.NewStateManager("StandardScaler"),
		logger: log.GetLoggerWithName("preprocessing").With(log.ModelNameKey, "StandardScaler"),
	}
}

// Fit は訓練データから統計情報（平均、標準偏差）を計算する
func (s *StandardScaler) Fit(ds dataset.Dataset) error {
	if ds.IsEmpty() {
		return errors.NewEmptyInputError("StandardScaler.Fit")
	}
	n := float64(ds.Len())
	mean := make([]float64, ds.Width())
	scale := make([]float64, ds.Width())
	for j := range mean {
		col := ds.Column(j)
		sum := 0.0
		for _, v := range col {
			sum += v
		}
		mean[j] = sum / n
		sumSquares := 0.0
		for _, v := range col {
			d := v - mean[j]
			sumSquares += d * d
		}
		scale[j] = math.Sqrt(sumSquares / n)
		if scale[j] == 0 {
			return errors.NewDegenerateColumnError("StandardScaler.Fit", j, col[0])
		}
	}
	s.Mean, s.Scale = mean, scale
	s.state.MarkFitted(ds.Width(), ds.Len())
	s.logger.Debug("Scaler fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, ds.Len(),
	)
	return nil
}

// Transform は学習済みの統計情報を使ってデータを標準化する
func (s *StandardScaler) Transform(ds dataset.Dataset) (dataset.Dataset, error) {
	if err := s.state.RequireFitted("Transform"); err != nil {
		return dataset.Dataset{}, err
	}
	if !ds.IsEmpty() && ds.Width() != len(s.Mean) {
		return dataset.Dataset{}, errors.NewDimensionError("StandardScaler.Transform", len(s.Mean), ds.Width(), 1)
	}
	return mapCells(ds, func(j int, v float64) float64 {
		return (v - s.Mean[j]) / s.Scale[j]
	})
}

// FitTransform はFitとTransformを順に実行する
func (s *StandardScaler) FitTransform(ds dataset.Dataset) (dataset.Dataset, error) {
	if err := s.Fit(ds); err != nil {
		return dataset.Dataset{}, err
	}
	return s.Transform(ds)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(ds dataset.Dataset) (dataset.Dataset, error) {
	if err := s.state.RequireFitted("InverseTransform"); err != nil {
		return dataset.Dataset{}, err
	}
	if !ds.IsEmpty() && ds.Width() != len(s.Mean) {
		return dataset.Dataset{}, errors.NewDimensionError("StandardScaler.InverseTransform", len(s.Mean), ds.Width(), 1)
	}
	return mapCells(ds, func(j int, v float64) float64 {
		return v*s.Scale[j] + s.Mean[j]
	})
}

// IsFitted reports whether Fit has succeeded.
func (s *StandardScaler) IsFitted() bool { return s.state.IsFitted() }

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.state.IsFitted() {
		return "StandardScaler()"
	}
	return fmt.Sprintf("StandardScaler(n_columns=%d)", len(s.Mean))
}

var (
	_ model.Transformer = (*MinMaxScaler)(nil)
	_ model.Transformer = (*StandardScaler)(nil)
)
