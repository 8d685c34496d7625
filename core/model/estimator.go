package model

import "github.com/YuminosukeSato/linreg/dataset"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる。各行の最後の要素が目的変数。
	Fit(train dataset.Dataset) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は各行に対する予測値を返す。目的変数の列は無視される。
	Predict(ds dataset.Dataset) ([]float64, error)
}

// Regressor combines fitting and prediction for regression models.
type Regressor interface {
	Fitter
	Predictor
	IsFitted() bool
}

// Transformer はデータを変換するモデルのインターフェース
type Transformer interface {
	Fit(ds dataset.Dataset) error
	Transform(ds dataset.Dataset) (dataset.Dataset, error)
	FitTransform(ds dataset.Dataset) (dataset.Dataset, error)
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// WeightExporter is implemented by models whose learned state fits in a
// ModelWeights record.
type WeightExporter interface {
	Weights() (*ModelWeights, error)
	SetWeights(w *ModelWeights) error
}
