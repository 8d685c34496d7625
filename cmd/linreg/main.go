// Command linreg loads a delimited numeric table, optionally min-max
// normalizes it, and reports k-fold cross-validation scores of a linear
// regression algorithm.
//
//	linreg -data winequality-white.csv -folds 5 -lr 0.01 -epochs 50
//	linreg -data insurance.tsv -delimiter '\t' -skip 0 -decimal-comma -algorithm simple
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/YuminosukeSato/linreg/core/model"
	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/linear"
	"github.com/YuminosukeSato/linreg/linear_model"
	"github.com/YuminosukeSato/linreg/metrics"
	"github.com/YuminosukeSato/linreg/model_selection"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
	"github.com/YuminosukeSato/linreg/plotting"
	"github.com/YuminosukeSato/linreg/preprocessing"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("linreg failed", log.ErrAttr(err))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if err := log.SetupLoggerTo(stderr, cfg.LogLevel); err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetProvider(log.NewZerologProviderTo(stderr, level))
	logger := log.GetLoggerWithName("cli")
	log.RouteWarnings(logger)
	defer log.RouteWarnings(nil)

	ds, err := dataset.LoadFile(cfg.DataPath, cfg.LoadOptions())
	if err != nil {
		return err
	}
	logger.Info("Dataset loaded",
		log.SamplesKey, ds.Len(),
		log.FeaturesKey, ds.NumPredictors(),
	)

	if cfg.Normalize {
		ds, err = preprocessing.NewMinMaxScaler().FitTransform(ds)
		if err != nil {
			return err
		}
	}

	scorer, err := metrics.ScorerByName(cfg.Scorer)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("Fold seed chosen", log.RandomSeedKey, seed)

	ev := model_selection.NewEvaluator(cfg.Folds,
		model_selection.WithRandomSource(model_selection.NewRandomSource(seed)),
		model_selection.WithScorer(scorer),
	)
	res, err := ev.Run(ds, algorithmFor(cfg))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Scores: %v\n", res.Scores)
	fmt.Fprintf(stdout, "Mean %s: %.3f\n", strings.ToUpper(cfg.Scorer), res.MeanRMSE)

	if cfg.PlotPath != "" {
		if err := plotting.FoldScores(res.Scores, cfg.PlotPath); err != nil {
			return err
		}
		logger.Info("Plot written", "path", cfg.PlotPath)
	}

	if cfg.WeightsOut != "" {
		m := regressorFor(cfg)
		if err := m.Fit(ds); err != nil {
			return err
		}
		if err := model.SaveModel(m, cfg.WeightsOut); err != nil {
			return err
		}
		logger.Info("Weights written", "path", cfg.WeightsOut)
	}
	return nil
}

func algorithmFor(cfg *Config) model_selection.Algorithm {
	switch cfg.Algorithm {
	case "ols":
		return func(train, test dataset.Dataset) ([]float64, error) {
			return linear.NewLinearRegression().FitPredict(train, test)
		}
	case "simple":
		return func(train, test dataset.Dataset) ([]float64, error) {
			return linear.NewSimpleLinearRegression().FitPredict(train, test)
		}
	default:
		return linear_model.SGD(cfg.LearningRate, cfg.Epochs)
	}
}

type persistableRegressor interface {
	model.Regressor
	model.WeightExporter
}

func regressorFor(cfg *Config) persistableRegressor {
	switch cfg.Algorithm {
	case "ols":
		return linear.NewLinearRegression()
	case "simple":
		return linear.NewSimpleLinearRegression()
	default:
		return linear_model.NewSGDRegressor(
			linear_model.WithLearningRate(cfg.LearningRate),
			linear_model.WithEpochs(cfg.Epochs),
		)
	}
}
