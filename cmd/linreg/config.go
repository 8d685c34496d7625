package main

import (
	"flag"
	"io"
	"unicode/utf8"

	"github.com/YuminosukeSato/linreg/dataset"
	"github.com/YuminosukeSato/linreg/metrics"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

// Config is everything the command needs, filled from flags.
type Config struct {
	DataPath     string
	Delimiter    string
	SkipLines    int
	DecimalComma bool
	Algorithm    string
	Folds        int
	LearningRate float64
	Epochs       int
	Seed         uint64
	SeedSet      bool
	Normalize    bool
	Scorer       string
	LogLevel     string
	PlotPath     string
	WeightsOut   string
}

func parseFlags(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("linreg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var seed int64
	fs.StringVar(&cfg.DataPath, "data", "", "path to the delimited data file (required)")
	fs.StringVar(&cfg.Delimiter, "delimiter", ";", `field delimiter, "\t" for tab`)
	fs.IntVar(&cfg.SkipLines, "skip", 1, "number of header lines to skip")
	fs.BoolVar(&cfg.DecimalComma, "decimal-comma", false, "fields use ',' as the decimal separator")
	fs.StringVar(&cfg.Algorithm, "algorithm", "sgd", "sgd, ols or simple")
	fs.IntVar(&cfg.Folds, "folds", 5, "number of cross-validation folds")
	fs.Float64Var(&cfg.LearningRate, "lr", 0.01, "SGD learning rate")
	fs.IntVar(&cfg.Epochs, "epochs", 50, "SGD epochs")
	fs.Int64Var(&seed, "seed", -1, "random seed for fold assignment; negative uses the clock")
	fs.BoolVar(&cfg.Normalize, "normalize", true, "min-max normalize every column before evaluation")
	fs.StringVar(&cfg.Scorer, "scorer", "rmse", "rmse, mse, mae, mape or r2")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "debug, info, warn or error")
	fs.StringVar(&cfg.PlotPath, "plot", "", "write a PNG bar chart of fold scores to this path")
	fs.StringVar(&cfg.WeightsOut, "weights-out", "", "fit on the whole dataset and write the weights as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if seed >= 0 {
		cfg.Seed, cfg.SeedSet = uint64(seed), true
	}
	if cfg.Delimiter == `\t` {
		cfg.Delimiter = "\t"
	}
	return cfg, cfg.Validate()
}

// Validate checks the flag values before any file is opened.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return errors.NewInvalidParameterError("data", "a data file is required", c.DataPath)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return errors.NewInvalidParameterError("delimiter", "must be a single character", c.Delimiter)
	}
	switch c.Algorithm {
	case "sgd", "ols", "simple":
	default:
		return errors.NewInvalidParameterError("algorithm", "must be sgd, ols or simple", c.Algorithm)
	}
	if c.Folds < 2 {
		return errors.NewInvalidParameterError("folds", "must be at least 2", c.Folds)
	}
	if c.Algorithm == "sgd" {
		if !(c.LearningRate > 0) {
			return errors.NewInvalidParameterError("lr", "must be positive", c.LearningRate)
		}
		if c.Epochs < 1 {
			return errors.NewInvalidParameterError("epochs", "must be at least 1", c.Epochs)
		}
	}
	if _, err := metrics.ScorerByName(c.Scorer); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.NewInvalidParameterError("log-level", "must be debug, info, warn or error", c.LogLevel)
	}
	return nil
}

// LoadOptions translates the input flags for dataset.ReadDelimited.
func (c *Config) LoadOptions() dataset.LoadOptions {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return dataset.LoadOptions{
		Delimiter:    r,
		SkipLines:    c.SkipLines,
		DecimalComma: c.DecimalComma,
	}
}
