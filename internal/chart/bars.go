package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// barSet draws the bars of one series. Unlike plotter.BarChart, widths and
// offsets are in data units, so grouped clusters keep their spacing at any
// figure size.
type barSet struct {
	bars       []Bar
	horizontal bool

	Color     color.Color
	LineStyle draw.LineStyle
}

func newBarSet(bars []Bar, horizontal bool, fill color.Color, edge color.Color) *barSet {
	b := &barSet{
		bars:       bars,
		horizontal: horizontal,
		Color:      fill,
	}
	if edge != nil {
		b.LineStyle = draw.LineStyle{Color: edge, Width: vg.Points(1)}
	}
	return b
}

// Plot implements plot.Plotter.
func (b *barSet) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, bar := range b.bars {
		catMin, catMax := bar.Centre-bar.Width/2, bar.Centre+bar.Width/2

		var pts []vg.Point
		if !b.horizontal {
			xMin, xMax := trX(catMin), trX(catMax)
			yMin, yMax := trY(bar.Base), trY(bar.Top)
			pts = []vg.Point{{X: xMin, Y: yMin}, {X: xMin, Y: yMax}, {X: xMax, Y: yMax}, {X: xMax, Y: yMin}}
		} else {
			xMin, xMax := trX(bar.Base), trX(bar.Top)
			yMin, yMax := trY(catMin), trY(catMax)
			pts = []vg.Point{{X: xMin, Y: yMin}, {X: xMin, Y: yMax}, {X: xMax, Y: yMax}, {X: xMax, Y: yMin}}
		}

		c.FillPolygon(b.Color, c.ClipPolygonXY(pts))

		if b.LineStyle.Color != nil && b.LineStyle.Width > 0 {
			outline := append(pts, pts[0])
			c.StrokeLines(b.LineStyle, c.ClipLinesXY(outline)...)
		}
	}
}

// DataRange implements plot.DataRanger. The value axis always includes 0.
func (b *barSet) DataRange() (xmin, xmax, ymin, ymax float64) {
	catMin, catMax := math.Inf(1), math.Inf(-1)
	valMin, valMax := 0.0, 0.0
	for _, bar := range b.bars {
		catMin = math.Min(catMin, bar.Centre-bar.Width/2)
		catMax = math.Max(catMax, bar.Centre+bar.Width/2)
		valMin = math.Min(valMin, math.Min(bar.Base, bar.Top))
		valMax = math.Max(valMax, math.Max(bar.Base, bar.Top))
	}
	if b.horizontal {
		return valMin, valMax, catMin, catMax
	}
	return catMin, catMax, valMin, valMax
}

// Thumbnail implements plot.Thumbnailer for the legend.
func (b *barSet) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))

	if b.LineStyle.Color != nil && b.LineStyle.Width > 0 {
		pts = append(pts, vg.Point{X: c.Min.X, Y: c.Min.Y})
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
	}
}
