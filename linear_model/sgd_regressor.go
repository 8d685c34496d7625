package linear_model

import (
	"context"
	"sync"
	"time"

	"github.com/YuminosukeSato/linreg/core/model"
	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/metrics"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

const modelName = "SGDRegressor"

// SGDRegressor is a linear regression model trained with the per-row
// gradient descent rule of FitCoefficients.
type SGDRegressor struct {
	state *model.StateManager

	// Hyperparameters
	learningRate float64
	nEpoch       int

	// Learning parameters
	coef_        Coefficients
	lossHistory_ []float64

	mu     sync.RWMutex
	logger log.Logger
}

// Option is a configuration option for SGDRegressor
type Option func(*SGDRegressor)

// WithLearningRate sets the constant step size.
func WithLearningRate(lr float64) Option {
	return func(sgd *SGDRegressor) {
		sgd.learningRate = lr
	}
}

// WithEpochs は学習データを走査する回数を設定
func WithEpochs(nEpoch int) Option {
	return func(sgd *SGDRegressor) {
		sgd.nEpoch = nEpoch
	}
}

// WithLogger はロガーを差し替える
func WithLogger(logger log.Logger) Option {
	return func(sgd *SGDRegressor) {
		sgd.logger = logger
	}
}

// NewSGDRegressor creates a new SGDRegressor. Defaults are a learning rate
// of 0.01 and 50 epochs.
func NewSGDRegressor(options ...Option) *SGDRegressor {
	sgd := &SGDRegressor{
		state:        model.NewStateManager(modelName),
		learningRate: 0.01,
		nEpoch:       50,
		logger:       log.GetLoggerWithName("linear_model"),
	}
	for _, opt := range options {
		opt(sgd)
	}
	sgd.logger = sgd.logger.With(log.ModelNameKey, modelName)
	return sgd
}

// Fit はモデルを訓練する。以前の学習結果は破棄され、係数はゼロから始まる。
func (sgd *SGDRegressor) Fit(train dataset.Dataset) error {
	sgd.mu.Lock()
	defer sgd.mu.Unlock()

	start := time.Now()
	debug := sgd.logger.Enabled(context.Background(), log.LevelDebug)
	history := make([]float64, 0, sgd.nEpoch)

	coef, err := fit(train, sgd.learningRate, sgd.nEpoch, func(epoch int, mse float64) {
		history = append(history, mse)
		if debug {
			sgd.logger.Debug("Epoch finished", log.EpochKey, epoch, log.LossKey, mse)
		}
	})
	if err != nil {
		sgd.logger.Error("Fit failed", err, log.OperationKey, log.OperationFit)
		return err
	}

	sgd.coef_ = coef
	sgd.lossHistory_ = history
	sgd.state.MarkFitted(train.NumPredictors(), train.Len())

	sgd.logger.Info("Model training completed",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, train.Len(),
		log.FeaturesKey, train.NumPredictors(),
		log.LearningRateKey, sgd.learningRate,
		log.EpochsKey, sgd.nEpoch,
		log.LossKey, history[len(history)-1],
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict は各行に対する予測値を返す。目的変数の列は読まれない。
func (sgd *SGDRegressor) Predict(ds dataset.Dataset) ([]float64, error) {
	sgd.mu.RLock()
	defer sgd.mu.RUnlock()

	if err := sgd.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}
	nFeatures, _ := sgd.state.GetDimensions()
	if !ds.IsEmpty() && ds.NumPredictors() != nFeatures {
		return nil, errors.NewDimensionError("SGDRegressor.Predict", nFeatures, ds.NumPredictors(), 1)
	}
	return predictAll(ds, sgd.coef_)
}

// FitPredict fits on train and predicts test.
func (sgd *SGDRegressor) FitPredict(train, test dataset.Dataset) ([]float64, error) {
	if err := sgd.Fit(train); err != nil {
		return nil, err
	}
	return sgd.Predict(test)
}

// Score returns the R² of the predictions on ds against its targets.
func (sgd *SGDRegressor) Score(ds dataset.Dataset) (float64, error) {
	preds, err := sgd.Predict(ds)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(ds.Targets(), preds)
}

// Coef は学習された重み係数（切片を除く）を返す
func (sgd *SGDRegressor) Coef() []float64 {
	sgd.mu.RLock()
	defer sgd.mu.RUnlock()
	if sgd.coef_ == nil {
		return nil
	}
	return sgd.coef_.Weights()
}

// Intercept は学習された切片を返す
func (sgd *SGDRegressor) Intercept() float64 {
	sgd.mu.RLock()
	defer sgd.mu.RUnlock()
	if sgd.coef_ == nil {
		return 0
	}
	return sgd.coef_.Intercept()
}

// Coefficients returns a copy of the full vector, intercept first.
func (sgd *SGDRegressor) Coefficients() Coefficients {
	sgd.mu.RLock()
	defer sgd.mu.RUnlock()
	return append(Coefficients(nil), sgd.coef_...)
}

// LossHistory returns the mean squared error of each epoch's updates.
func (sgd *SGDRegressor) LossHistory() []float64 {
	sgd.mu.RLock()
	defer sgd.mu.RUnlock()
	return append([]float64(nil), sgd.lossHistory_...)
}

// IsFitted returns whether the model has been fitted
func (sgd *SGDRegressor) IsFitted() bool {
	return sgd.state.IsFitted()
}

// GetParams returns the hyperparameters
func (sgd *SGDRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"learning_rate": sgd.learningRate,
		"n_epoch":       sgd.nEpoch,
	}
}

// Weights はモデルの重みをシリアライズ用の構造体で返す
func (sgd *SGDRegressor) Weights() (*model.ModelWeights, error) {
	sgd.mu.RLock()
	defer sgd.mu.RUnlock()

	if err := sgd.state.RequireFitted("Weights"); err != nil {
		return nil, err
	}
	_, nSamples := sgd.state.GetDimensions()
	return &model.ModelWeights{
		ModelType:       modelName,
		Version:         model.WeightsVersion,
		Coefficients:    sgd.coef_.Weights(),
		Intercept:       sgd.coef_.Intercept(),
		Hyperparameters: sgd.GetParams(),
		Metadata:        map[string]interface{}{"n_samples": nSamples},
		IsFitted:        true,
	}, nil
}

// SetWeights は保存された重みを復元する
func (sgd *SGDRegressor) SetWeights(w *model.ModelWeights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.ModelType != modelName {
		return errors.NewValueError("SGDRegressor.SetWeights", "model type mismatch: "+w.ModelType)
	}

	sgd.mu.Lock()
	defer sgd.mu.Unlock()

	if lr, ok := w.Hyperparameters["learning_rate"].(float64); ok {
		sgd.learningRate = lr
	}
	switch n := w.Hyperparameters["n_epoch"].(type) {
	case int:
		sgd.nEpoch = n
	case float64:
		sgd.nEpoch = int(n)
	}

	sgd.coef_ = append(Coefficients{w.Intercept}, w.Coefficients...)
	sgd.lossHistory_ = nil
	sgd.state.MarkFitted(len(w.Coefficients), 0)
	return nil
}

var (
	_ model.Regressor      = (*SGDRegressor)(nil)
	_ model.WeightExporter = (*SGDRegressor)(nil)
)
