// Package linear provides closed-form least-squares regressors that share
// the dataset layout and estimator interfaces of linear_model.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linreg/core/model"
	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/metrics"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

// LinearRegression は正規方程式で解く線形回帰モデル
type LinearRegression struct {
	state     *model.StateManager
	weights   *mat.VecDense // 重み（係数）
	intercept float64       // 切片
	logger    log.Logger
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{
		state:  model.NewStateManager("LinearRegression"),
		logger: log.GetLoggerWithName("linear").With(log.ModelNameKey, "LinearRegression"),
	}
}

// Fit はモデルを訓練データで学習させる
// 正規方程式 w = (X^T * X)^(-1) * X^T * y を使用
func (lr *LinearRegression) Fit(train dataset.Dataset) error {
	X, y, err := train.XY()
	if err != nil {
		return errors.NewModelError("LinearRegression.Fit", "empty data", err)
	}
	r, c := X.Dims()

	// 切片項のために X に 1 の列を追加
	// X_with_intercept = [1, X]
	XWithIntercept := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		XWithIntercept.Set(i, 0, 1.0)
		for j := 0; j < c; j++ {
			XWithIntercept.Set(i, j+1, X.At(i, j))
		}
	}

	var XTX mat.Dense
	XTX.Mul(XWithIntercept.T(), XWithIntercept)

	// 逆行列を計算
	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	var XTy mat.VecDense
	XTy.MulVec(XWithIntercept.T(), y)

	// 重みを計算: (X^T * X)^(-1) * X^T * y
	w := mat.NewVecDense(c+1, nil)
	w.MulVec(&XTXInv, &XTy)

	// 切片と重みを分離
	lr.intercept = w.AtVec(0)
	lr.weights = mat.VecDenseCopyOf(w.SliceVec(1, c+1))
	lr.state.MarkFitted(c, r)

	lr.logger.Debug("Normal equations solved",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)
	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(ds dataset.Dataset) ([]float64, error) {
	if err := lr.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}
	if ds.IsEmpty() {
		return []float64{}, nil
	}
	nFeatures, _ := lr.state.GetDimensions()
	if ds.NumPredictors() != nFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", nFeatures, ds.NumPredictors(), 1)
	}

	// 予測: y = X * weights + intercept
	X, _, err := ds.XY()
	if err != nil {
		return nil, err
	}
	var pred mat.VecDense
	pred.MulVec(X, lr.weights)
	out := make([]float64, pred.Len())
	for i := range out {
		out[i] = pred.AtVec(i) + lr.intercept
	}
	return out, nil
}

// FitPredict fits on train and predicts test. Its method value can be
// passed to model_selection.CrossValidate as an algorithm.
func (lr *LinearRegression) FitPredict(train, test dataset.Dataset) ([]float64, error) {
	if err := lr.Fit(train); err != nil {
		return nil, err
	}
	return lr.Predict(test)
}

// Coefficients は学習された重み（切片を除く）を返す
func (lr *LinearRegression) Coefficients() []float64 {
	if lr.weights == nil {
		return nil
	}
	return mat.Col(nil, 0, lr.weights)
}

// Intercept は学習された切片を返す
func (lr *LinearRegression) Intercept() float64 {
	return lr.intercept
}

// IsFitted returns whether Fit has succeeded.
func (lr *LinearRegression) IsFitted() bool { return lr.state.IsFitted() }

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(ds dataset.Dataset) (float64, error) {
	preds, err := lr.Predict(ds)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(ds.Targets(), preds)
}

// Weights はモデルの重みをシリアライズ用の構造体で返す
func (lr *LinearRegression) Weights() (*model.ModelWeights, error) {
	if err := lr.state.RequireFitted("Weights"); err != nil {
		return nil, err
	}
	return &model.ModelWeights{
		ModelType:       "LinearRegression",
		Version:         model.WeightsVersion,
		Coefficients:    lr.Coefficients(),
		Intercept:       lr.intercept,
		Hyperparameters: map[string]interface{}{},
		IsFitted:        true,
	}, nil
}

// SetWeights は保存された重みを復元する
func (lr *LinearRegression) SetWeights(w *model.ModelWeights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.ModelType != "LinearRegression" {
		return errors.NewValueError("LinearRegression.SetWeights", "model type mismatch: "+w.ModelType)
	}
	lr.weights = mat.NewVecDense(len(w.Coefficients), append([]float64(nil), w.Coefficients...))
	lr.intercept = w.Intercept
	lr.state.MarkFitted(len(w.Coefficients), 0)
	return nil
}

var (
	_ model.Regressor      = (*LinearRegression)(nil)
	_ model.WeightExporter = (*LinearRegression)(nil)
)
