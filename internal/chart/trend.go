package chart

import (
	"fmt"
	"image/color"

	"github.com/maorshutman/lm"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FitTrend fits value = slope*position + intercept to the points by
// Levenberg-Marquardt least squares.
func FitTrend(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("%w: %d positions for %d values", ErrInvalidInput, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, 0, fmt.Errorf("%w: a trend needs at least two points", ErrInvalidInput)
	}

	residuals := func(dst, guess []float64) {
		for i := range xs {
			dst[i] = guess[0]*xs[i] + guess[1] - ys[i]
		}
	}

	var mean float64
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))

	jacobian := lm.NumJac{Func: residuals}

	problem := lm.LMProblem{
		Dim:        2,
		Size:       len(xs),
		Func:       residuals,
		Jac:        jacobian.Jac,
		InitParams: []float64{0, mean},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: 100, ObjectiveTol: 1e-16})
	if err != nil {
		return 0, 0, fmt.Errorf("fitting trend: %w", err)
	}

	return results.X[0], results.X[1], nil
}

// addTrend fits and overlays a dashed trend line for one series.
func (c *Canvas) addTrend(series string, positions, values []float64, clr color.Color) error {
	slope, intercept, err := FitTrend(positions, values)
	if err != nil {
		return fmt.Errorf("trend for %q: %w", series, err)
	}
	c.trends = append(c.trends, Trend{Series: series, Slope: slope, Intercept: intercept})

	first, last := positions[0], positions[len(positions)-1]
	pts := plotter.XYs{
		{X: first, Y: slope*first + intercept},
		{X: last, Y: slope*last + intercept},
	}
	if c.horizontal {
		for i := range pts {
			pts[i].X, pts[i].Y = pts[i].Y, pts[i].X
		}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("trend for %q: %w", series, err)
	}
	line.LineStyle.Color = clr
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	c.plot.Add(line)

	return nil
}
