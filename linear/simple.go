package linear

import (
	"github.com/YuminosukeSato/linreg/core/model"
	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/stats"
)

// SimpleLinearRegression fits y = b0 + b1*x for a single predictor using
// b1 = cov(x, y) / var(x) and b0 = mean(y) - b1*mean(x).
type SimpleLinearRegression struct {
	state     *model.StateManager
	intercept float64
	slope     float64
}

// NewSimpleLinearRegression returns an unfitted model.
func NewSimpleLinearRegression() *SimpleLinearRegression {
	return &SimpleLinearRegression{state: model.NewStateManager("SimpleLinearRegression")}
}

// Fit estimates the slope and intercept. train must have exactly one
// predictor column.
func (s *SimpleLinearRegression) Fit(train dataset.Dataset) error {
	if train.IsEmpty() {
		return errors.NewEmptyInputError("SimpleLinearRegression.Fit")
	}
	if train.NumPredictors() != 1 {
		return errors.NewDimensionError("SimpleLinearRegression.Fit", 1, train.NumPredictors(), 1)
	}
	b0, b1, err := stats.SimpleCoefficients(train.Column(0), train.Targets())
	if err != nil {
		return err
	}
	s.intercept, s.slope = b0, b1
	s.state.MarkFitted(1, train.Len())
	return nil
}

// Predict returns b0 + b1*row[0] for each row.
func (s *SimpleLinearRegression) Predict(ds dataset.Dataset) ([]float64, error) {
	if err := s.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}
	if !ds.IsEmpty() && ds.NumPredictors() != 1 {
		return nil, errors.NewDimensionError("SimpleLinearRegression.Predict", 1, ds.NumPredictors(), 1)
	}
	preds := make([]float64, ds.Len())
	for i := range preds {
		preds[i] = s.intercept + s.slope*ds.At(i, 0)
	}
	return preds, nil
}

// FitPredict fits on train and predicts test.
func (s *SimpleLinearRegression) FitPredict(train, test dataset.Dataset) ([]float64, error) {
	if err := s.Fit(train); err != nil {
		return nil, err
	}
	return s.Predict(test)
}

// Slope returns b1.
func (s *SimpleLinearRegression) Slope() float64 { return s.slope }

// Intercept returns b0.
func (s *SimpleLinearRegression) Intercept() float64 { return s.intercept }

// IsFitted returns whether Fit has succeeded.
func (s *SimpleLinearRegression) IsFitted() bool { return s.state.IsFitted() }

// Weights exports the fitted line.
func (s *SimpleLinearRegression) Weights() (*model.ModelWeights, error) {
	if err := s.state.RequireFitted("Weights"); err != nil {
		return nil, err
	}
	return &model.ModelWeights{
		ModelType:       "SimpleLinearRegression",
		Version:         model.WeightsVersion,
		Coefficients:    []float64{s.slope},
		Intercept:       s.intercept,
		Hyperparameters: map[string]interface{}{},
		IsFitted:        true,
	}, nil
}

// SetWeights restores a line exported by Weights.
func (s *SimpleLinearRegression) SetWeights(w *model.ModelWeights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.ModelType != "SimpleLinearRegression" {
		return errors.NewValueError("SimpleLinearRegression.SetWeights", "model type mismatch: "+w.ModelType)
	}
	if len(w.Coefficients) != 1 {
		return errors.NewDimensionError("SimpleLinearRegression.SetWeights", 1, len(w.Coefficients), 1)
	}
	s.intercept, s.slope = w.Intercept, w.Coefficients[0]
	s.state.MarkFitted(1, 0)
	return nil
}

var (
	_ model.Regressor      = (*SimpleLinearRegression)(nil)
	_ model.WeightExporter = (*SimpleLinearRegression)(nil)
)
