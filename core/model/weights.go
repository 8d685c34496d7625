package model

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// WeightsVersion is written into every ModelWeights produced by this module.
const WeightsVersion = "1.0.0"

// ModelWeights はモデルの重みを表す構造体（シリアライゼーション用）
type ModelWeights struct {
	// ModelType はモデルの種類（SGDRegressor, LinearRegression等）
	ModelType string `json:"model_type"`

	// Version はモデルのバージョン（互換性チェック用）
	Version string `json:"version"`

	// Coefficients は切片を除いた重み係数
	Coefficients []float64 `json:"coefficients"`

	// Intercept は切片
	Intercept float64 `json:"intercept"`

	// Features は特徴量の名前（オプション）
	Features []string `json:"features,omitempty"`

	// Hyperparameters はモデルのハイパーパラメータ
	Hyperparameters map[string]interface{} `json:"hyperparameters"`

	// Metadata は追加のメタデータ（学習時の統計等）
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// IsFitted はモデルが学習済みかどうか
	IsFitted bool `json:"is_fitted"`
}

// ToJSON はModelWeightsをJSON形式にシリアライズ
//
// JSONはNaNとInfを表現できないため、発散した係数を含む場合はValueErrorを返す。
func (mw *ModelWeights) ToJSON() ([]byte, error) {
	for i, c := range append([]float64{mw.Intercept}, mw.Coefficients...) {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.NewValueError("ModelWeights.ToJSON",
				fmt.Sprintf("coefficient %d is not finite (%v)", i, c))
		}
	}
	data, err := json.MarshalIndent(mw, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal model weights")
	}
	return data, nil
}

// FromJSON はJSON形式からModelWeightsをデシリアライズし、妥当性を検証する
func (mw *ModelWeights) FromJSON(data []byte) error {
	if err := json.Unmarshal(data, mw); err != nil {
		return errors.Wrap(err, "unmarshal model weights")
	}
	return mw.Validate()
}

// Validate はModelWeightsの妥当性を検証
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return errors.NewValueError("ModelWeights.Validate", "model_type is required")
	}

	if mw.Version == "" {
		return errors.NewValueError("ModelWeights.Validate", "version is required")
	}

	if !mw.IsFitted && len(mw.Coefficients) > 0 {
		return errors.NewValueError("ModelWeights.Validate", "unfitted model should not have coefficients")
	}

	if mw.IsFitted && len(mw.Coefficients) == 0 {
		return errors.NewValueError("ModelWeights.Validate", "fitted model must have coefficients")
	}

	if len(mw.Features) > 0 && len(mw.Features) != len(mw.Coefficients) {
		return errors.NewLengthMismatchError("ModelWeights.Validate", len(mw.Features), len(mw.Coefficients))
	}

	return nil
}

// Clone はModelWeightsのディープコピーを作成
func (mw *ModelWeights) Clone() *ModelWeights {
	clone := &ModelWeights{
		ModelType:       mw.ModelType,
		Version:         mw.Version,
		Intercept:       mw.Intercept,
		IsFitted:        mw.IsFitted,
		Coefficients:    append([]float64(nil), mw.Coefficients...),
		Features:        append([]string(nil), mw.Features...),
		Hyperparameters: make(map[string]interface{}, len(mw.Hyperparameters)),
		Metadata:        make(map[string]interface{}, len(mw.Metadata)),
	}

	for k, v := range mw.Hyperparameters {
		clone.Hyperparameters[k] = v
	}

	for k, v := range mw.Metadata {
		clone.Metadata[k] = v
	}

	return clone
}
