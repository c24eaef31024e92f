package chart

import (
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Kind names a bar chart variant.
type Kind string

const (
	KindBasic      Kind = "basic"
	KindGrouped    Kind = "grouped"
	KindStacked    Kind = "stacked"
	KindHorizontal Kind = "horizontal"
	KindErrorBars  Kind = "errorbars"
)

// Kinds lists every variant in session order.
var Kinds = []Kind{KindBasic, KindGrouped, KindStacked, KindHorizontal, KindErrorBars}

// Point is a position in data coordinates.
type Point struct {
	X, Y float64
}

// Bar is one drawn bar. Centre is its position along the category axis and
// Base and Top its extent along the value axis.
type Bar struct {
	Series   string
	Category string
	Centre   float64
	Width    float64
	Base     float64
	Top      float64
}

// Height is the value the bar represents.
func (b Bar) Height() float64 { return b.Top - b.Base }

// ErrorBar is a symmetric whisker of half-length Err centred on At.
type ErrorBar struct {
	Series string
	At     Point
	Err    float64
}

// Label is a text annotation anchored at its bottom centre.
type Label struct {
	At   Point
	Text string
}

// Trend is a fitted line value = Slope*position + Intercept.
type Trend struct {
	Series    string
	Slope     float64
	Intercept float64
}

// Canvas is a drawing surface owned by whoever rendered it. It records what
// was drawn so callers can inspect the geometry without rasterising. Release
// it with Close or Export before rendering the next chart.
type Canvas struct {
	kind       Kind
	cfg        Config
	categories []string
	horizontal bool

	plot   *plot.Plot
	bars   []Bar
	errs   []ErrorBar
	labels []Label
	trends []Trend
}

func newCanvas(kind Kind, categories []string, cfg Config) *Canvas {
	p := plot.New()
	p.BackgroundColor = color.White

	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = 14
	p.Title.Padding = font.Length(8)

	p.X.Label.Text = cfg.XLabel
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = 12
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = 10

	p.Y.Label.Text = cfg.YLabel
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = 12
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = 10

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.TextStyle.Font.Size = 10
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(4)
	p.Legend.ThumbnailWidth = vg.Points(20)

	if g := newGrid(cfg); g != nil {
		p.Add(g)
	}

	return &Canvas{
		kind:       kind,
		cfg:        cfg,
		categories: append([]string(nil), categories...),
		horizontal: kind == KindHorizontal,
		plot:       p,
	}
}

func newGrid(cfg Config) *plotter.Grid {
	if cfg.GridAxis == GridNone {
		return nil
	}

	d, _ := dashes(cfg.GridStyle.Line)
	clr := withAlpha(colornames.Darkgray, cfg.GridStyle.Alpha)

	g := plotter.NewGrid()
	g.Vertical.Color = clr
	g.Vertical.Dashes = d
	g.Horizontal.Color = clr
	g.Horizontal.Dashes = d

	// Gridlines for an axis run across it at that axis' ticks.
	switch cfg.GridAxis {
	case GridY:
		g.Vertical.Color = nil
	case GridX:
		g.Horizontal.Color = nil
	}

	return g
}

// Plot exposes the underlying plot, nil once the canvas is released.
func (c *Canvas) Plot() *plot.Plot { return c.plot }

// Closed reports whether the canvas has been released.
func (c *Canvas) Closed() bool { return c == nil || c.plot == nil }

// Close releases the drawing surface. It is safe to call more than once.
func (c *Canvas) Close() error {
	if c == nil {
		return nil
	}
	c.plot = nil
	return nil
}

func (c *Canvas) Kind() Kind             { return c.kind }
func (c *Canvas) Config() Config         { return c.cfg }
func (c *Canvas) Categories() []string   { return c.categories }
func (c *Canvas) Horizontal() bool       { return c.horizontal }
func (c *Canvas) Bars() []Bar            { return c.bars }
func (c *Canvas) ErrorBars() []ErrorBar  { return c.errs }
func (c *Canvas) Labels() []Label        { return c.labels }
func (c *Canvas) Trends() []Trend        { return c.trends }
func (c *Canvas) Size() (w, h vg.Length) { return c.cfg.size() }

// SeriesBars returns the bars of one series in category order.
func (c *Canvas) SeriesBars(name string) []Bar {
	var out []Bar
	for _, b := range c.bars {
		if b.Series == name {
			out = append(out, b)
		}
	}
	return out
}

// SeriesNames returns the series drawn, in drawing order.
func (c *Canvas) SeriesNames() []string {
	var names []string
	seen := map[string]bool{}
	for _, b := range c.bars {
		if !seen[b.Series] {
			seen[b.Series] = true
			names = append(names, b.Series)
		}
	}
	return names
}
