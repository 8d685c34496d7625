// Package linreg is a small linear regression toolkit for Go: gradient
// descent and closed-form least squares over row-oriented numeric tables,
// with min-max normalization and k-fold cross-validation to estimate how
// well a model generalizes.
//
// Every table is a dataset.Dataset whose last column is the target. Models
// plug into the cross-validation harness as plain functions, so anything
// with the shape func(train, test dataset.Dataset) ([]float64, error) can be
// evaluated.
//
// # Installation
//
//	go get github.com/YuminosukeSato/linreg
//
// # Quick Start
//
// Normalize a table and estimate the RMSE of an SGD-trained model over five
// folds:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/linreg/dataset"
//	    "github.com/YuminosukeSato/linreg/linear_model"
//	    "github.com/YuminosukeSato/linreg/model_selection"
//	    "github.com/YuminosukeSato/linreg/preprocessing"
//	)
//
//	func main() {
//	    ds, err := dataset.LoadFile("winequality-white.csv", dataset.DefaultLoadOptions())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    ds, err = preprocessing.NewMinMaxScaler().FitTransform(ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ev := model_selection.NewEvaluator(5,
//	        model_selection.WithRandomSource(model_selection.NewRandomSource(1)),
//	    )
//	    res, err := ev.Run(ds, linear_model.SGD(0.01, 50))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res)
//	}
//
// # Packages
//
//   - dataset: the Dataset type and a delimited-text loader
//   - stats: mean, variance, covariance, RMSE and simple-regression coefficients
//   - preprocessing: min-max normalization and z-score scaling
//   - linear_model: stochastic gradient descent (functions and SGDRegressor)
//   - linear: closed-form least squares (SimpleLinearRegression, LinearRegression)
//   - model_selection: KFold, CrossValidate and Evaluator
//   - metrics: regression scores usable as cross-validation scorers
//   - core/model: estimator interfaces, fitted state and JSON weight persistence
//   - plotting: PNG charts of fold scores and fitted lines
//   - pkg/errors, pkg/log: structured errors, warnings and logging
//
// The cmd/linreg command wires these together behind flags.
package linreg
