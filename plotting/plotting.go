// Package plotting renders evaluation results as PNG images with gonum/plot.
package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/stats"
)

// Image size of every saved plot.
const (
	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch
)

var meanColor = color.RGBA{R: 220, G: 50, B: 47, A: 255}

// FoldScores saves a bar chart of per-fold scores, with a horizontal line at
// their mean, to path. The file format follows the extension of path.
func FoldScores(scores []float64, path string) error {
	mean, err := stats.Mean(scores)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Cross-validation scores"
	p.X.Label.Text = "Fold"
	p.Y.Label.Text = "Score"

	bars, err := plotter.NewBarChart(plotter.Values(scores), vg.Points(30))
	if err != nil {
		return errors.Wrap(err, "plotting.FoldScores: bar chart")
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotter.DefaultLineStyle.Color
	p.Add(bars)

	meanLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: mean},
		{X: float64(len(scores)) - 0.5, Y: mean},
	})
	if err != nil {
		return errors.Wrap(err, "plotting.FoldScores: mean line")
	}
	meanLine.Color = meanColor
	meanLine.Width = vg.Points(2)
	meanLine.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(meanLine)
	p.Legend.Add(fmt.Sprintf("mean %.3f", mean), meanLine)

	names := make([]string, len(scores))
	for i := range names {
		names[i] = fmt.Sprintf("%d", i)
	}
	p.NominalX(names...)

	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "plotting.FoldScores: save %s", path)
	}
	return nil
}

// RegressionLine saves a scatter of (x, y) with the fitted line
// y = intercept + slope*x drawn across the range of x.
func RegressionLine(x, y []float64, intercept, slope float64, path string) error {
	if len(x) != len(y) {
		return errors.NewLengthMismatchError("plotting.RegressionLine", len(x), len(y))
	}
	if len(x) == 0 {
		return errors.NewEmptyInputError("plotting.RegressionLine")
	}

	p := plot.New()
	p.Title.Text = "Fitted regression line"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "plotting.RegressionLine: scatter")
	}
	scatter.Color = plotter.DefaultLineStyle.Color
	p.Add(scatter)
	p.Legend.Add("Data points", scatter)

	lo, hi := floats.Min(x), floats.Max(x)
	line, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: intercept + slope*lo},
		{X: hi, Y: intercept + slope*hi},
	})
	if err != nil {
		return errors.Wrap(err, "plotting.RegressionLine: line")
	}
	line.Color = meanColor
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Regression line", line)

	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "plotting.RegressionLine: save %s", path)
	}
	return nil
}
