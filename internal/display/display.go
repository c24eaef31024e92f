// Package display shows rendered charts in a gnuplot window.
//
// The gnuplot backend is linked only in builds tagged "gnuplot", since the
// glot package refuses to load without a gnuplot binary on PATH. Other
// builds keep the same API and report the missing binary from Show.
package display

import (
	"github.com/HamletTheHamster/barcharts/internal/chart"
)

// PointGroup is one glot data set: a name, a gnuplot style and its columns.
type PointGroup struct {
	Name  string
	Style string
	Data  [][]float64
}

// PointGroups converts the scene recorded on c into gnuplot data sets. Each
// series becomes a "boxes" group at its bar positions. Stacked series are
// drawn from the top of the stack down, so every box shows above the ones
// beneath it. Horizontal charts keep categories on x, since gnuplot boxes
// are vertical.
func PointGroups(c *chart.Canvas) []PointGroup {
	names := c.SeriesNames()
	groups := make([]PointGroup, 0, len(names)+1)

	for _, name := range names {
		bars := c.SeriesBars(name)
		xs := make([]float64, len(bars))
		ys := make([]float64, len(bars))
		for i, b := range bars {
			xs[i], ys[i] = b.Centre, b.Top
		}
		groups = append(groups, PointGroup{Name: name, Style: "boxes", Data: [][]float64{xs, ys}})
	}

	if c.Kind() == chart.KindStacked {
		reverse(groups)
	}

	if errs := c.ErrorBars(); len(errs) > 0 {
		// A 2-D glot plot only takes x and y columns, so whiskers are shown
		// by their end points.
		xs := make([]float64, 0, 2*len(errs))
		ys := make([]float64, 0, 2*len(errs))
		for _, e := range errs {
			xs = append(xs, e.At.X, e.At.X)
			ys = append(ys, e.At.Y-e.Err, e.At.Y+e.Err)
		}
		groups = append(groups, PointGroup{Name: errs[0].Series + " error", Style: "points", Data: [][]float64{xs, ys}})
	}

	return groups
}

func reverse(groups []PointGroup) {
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
}

// Gnuplot shows canvases through a gnuplot process. It needs a gnuplot
// binary on PATH and a build tagged "gnuplot".
type Gnuplot struct {
	// Persist starts gnuplot with -persist, so windows outlive the process
	// that drew them. Without it the window closes as soon as Show returns.
	Persist bool
	Debug   bool
}
