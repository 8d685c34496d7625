package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/core/model"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

func writeLine(t *testing.T, n int, sep string, decimalComma bool) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("x" + sep + "y\n")
	for i := 0; i < n; i++ {
		y := fmt.Sprintf("%.1f", 2*float64(i)+1.5)
		if decimalComma {
			y = strings.Replace(y, ".", ",", 1)
		}
		fmt.Fprintf(&b, "%d%s%s\n", i, sep, y)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetProvider(log.NewZerologProvider(log.LevelWarn))
	})
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunSGD(t *testing.T) {
	path := writeLine(t, 30, ";", false)
	plotPath := filepath.Join(t.TempDir(), "scores.png")
	weightsPath := filepath.Join(t.TempDir(), "weights.json")

	out, _, err := runCLI(t,
		"-data", path, "-folds", "3", "-lr", "0.1", "-epochs", "100", "-seed", "1",
		"-plot", plotPath, "-weights-out", weightsPath,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Scores: [")
	assert.Contains(t, out, "Mean RMSE: 0.0")

	_, err = os.Stat(plotPath)
	assert.NoError(t, err)

	f, err := os.Open(weightsPath)
	require.NoError(t, err)
	defer f.Close()
	w, err := model.LoadWeights(f)
	require.NoError(t, err)
	assert.Equal(t, "SGDRegressor", w.ModelType)
}

func TestRunSimpleTabDecimalComma(t *testing.T) {
	path := writeLine(t, 20, "\t", true)
	out, _, err := runCLI(t,
		"-data", path, "-delimiter", `\t`, "-decimal-comma", "-algorithm", "simple",
		"-normalize=false", "-folds", "4", "-seed", "2", "-scorer", "mae",
	)
	require.NoError(t, err)
	// y is exactly linear in x, so every fold is fitted perfectly
	assert.Contains(t, out, "Mean MAE: 0.000")
}

func TestRunOLS(t *testing.T) {
	path := writeLine(t, 12, ";", false)
	out, _, err := runCLI(t, "-data", path, "-algorithm", "ols", "-folds", "3", "-seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Mean RMSE: 0.000")
}

func TestRunErrors(t *testing.T) {
	var paramErr *errors.InvalidParameterError

	_, _, err := runCLI(t)
	assert.True(t, errors.As(err, &paramErr), "missing -data")

	path := writeLine(t, 10, ";", false)
	for _, args := range [][]string{
		{"-data", path, "-algorithm", "lasso"},
		{"-data", path, "-folds", "1"},
		{"-data", path, "-lr", "0"},
		{"-data", path, "-epochs", "0"},
		{"-data", path, "-scorer", "huber"},
		{"-data", path, "-delimiter", ";;"},
		{"-data", path, "-log-level", "loud"},
	} {
		_, _, err := runCLI(t, args...)
		assert.True(t, errors.As(err, &paramErr), "%v", args)
	}

	_, _, err = runCLI(t, "-data", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, _, err = runCLI(t, "-data", path, "-folds", "20")
	assert.True(t, errors.As(err, &paramErr), "more folds than rows")
}
