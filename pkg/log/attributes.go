// Package log defines standard attribute keys for regression and evaluation runs.
//
// The keys follow a hierarchical naming convention ("model.name",
// "data.samples") so log output can be filtered consistently across packages.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "SGDRegressor", "MinMaxScaler", "LinearRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the run.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey indicates the number of rows in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of predictor columns.
	FeaturesKey = "data.features"

	// FoldKey is the index of the cross-validation fold.
	FoldKey = "cv.fold"

	// FoldsKey is the number of cross-validation folds.
	FoldsKey = "cv.folds"

	// FoldSizeKey is the number of rows per fold.
	FoldSizeKey = "cv.fold_size"

	// DroppedRowsKey is the number of rows left out of every fold.
	DroppedRowsKey = "cv.dropped_rows"
)

// Training and Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records loss value during training or evaluation.
	LossKey = "metrics.loss"

	// ScoreKey records a per-fold evaluation score.
	ScoreKey = "metrics.score"

	// MeanScoreKey records the mean of the per-fold scores.
	MeanScoreKey = "metrics.mean_score"

	// EpochKey records the current epoch number during training.
	EpochKey = "training.epoch"

	// LearningRateKey records the learning rate for gradient-based algorithms.
	LearningRateKey = "hyperparams.learning_rate"

	// EpochsKey records the configured number of epochs.
	EpochsKey = "hyperparams.epochs"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Error Context
const (
	// ErrorTypeKey categorizes the type of error or warning encountered.
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Populated automatically when an error is logged.
	StacktraceKey = "error.stacktrace"

	// WarningKey carries a structured warning object.
	WarningKey = "warning"
)

// Standard attribute values.
const (
	OperationFit           = "fit"
	OperationPredict       = "predict"
	OperationTransform     = "transform"
	OperationSplit         = "split"
	OperationCrossValidate = "cross_validate"

	PhaseTraining      = "training"
	PhaseValidation    = "validation"
	PhasePreprocessing = "preprocessing"
)
