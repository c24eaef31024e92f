package chart

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// RenderBasicBar draws one bar per category at its value.
func RenderBasicBar(categories []string, series Series, cfg Config) (*Canvas, error) {
	if err := checkSeriesList(categories, []Series{series}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := newCanvas(KindBasic, categories, cfg)
	c.plot.NominalX(categories...)

	bars := c.drawSeries(series, ticks(len(categories)), nil, cfg.seriesColor(0), false)
	if cfg.Trend {
		if err := c.addTrend(series.Name, ticks(len(categories)), series.Values, cfg.seriesColor(0)); err != nil {
			return nil, err
		}
	}

	slog.Debug("rendered chart", "kind", c.kind, "bars", len(bars))

	return c, nil
}

// RenderGroupedBar draws the series side by side around each category tick.
func RenderGroupedBar(categories []string, list []Series, cfg Config) (*Canvas, error) {
	if err := checkSeriesList(categories, list); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BarWidth*float64(len(list)) > 1 {
		return nil, fmt.Errorf(
			"%w: %d series of width %v overlap neighbouring categories",
			ErrInvalidInput, len(list), cfg.BarWidth,
		)
	}

	c := newCanvas(KindGrouped, categories, cfg)
	c.plot.NominalX(categories...)

	offs := GroupOffsets(len(list), cfg.BarWidth)
	for s, series := range list {
		positions := ticks(len(categories))
		for i := range positions {
			positions[i] += offs[s]
		}

		c.drawSeries(series, positions, nil, cfg.seriesColor(s), cfg.Legend)

		if cfg.Trend {
			if err := c.addTrend(series.Name, positions, series.Values, cfg.seriesColor(s)); err != nil {
				return nil, err
			}
		}
	}

	slog.Debug("rendered chart", "kind", c.kind, "series", len(list), "bars", len(c.bars))

	return c, nil
}

// RenderStackedBar draws each series on top of the running per-category
// total of the series before it.
func RenderStackedBar(categories []string, list []Series, cfg Config) (*Canvas, error) {
	if err := checkSeriesList(categories, list); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := newCanvas(KindStacked, categories, cfg)
	c.plot.NominalX(categories...)

	bases := StackBaselines(list)
	for s, series := range list {
		c.drawSeries(series, ticks(len(categories)), bases[s], cfg.seriesColor(s), cfg.Legend)
	}

	if cfg.Trend {
		if err := c.addTrend("total", ticks(len(categories)), StackTotals(list), color.Black); err != nil {
			return nil, err
		}
	}

	slog.Debug("rendered chart", "kind", c.kind, "series", len(list), "bars", len(c.bars))

	return c, nil
}

// RenderHorizontalBar draws one bar per category extending along the x axis.
func RenderHorizontalBar(categories []string, series Series, cfg Config) (*Canvas, error) {
	if err := checkSeriesList(categories, []Series{series}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := newCanvas(KindHorizontal, categories, cfg)
	c.plot.NominalY(categories...)

	bars := c.drawSeries(series, ticks(len(categories)), nil, cfg.seriesColor(0), false)
	if cfg.Trend {
		if err := c.addTrend(series.Name, ticks(len(categories)), series.Values, cfg.seriesColor(0)); err != nil {
			return nil, err
		}
	}

	slog.Debug("rendered chart", "kind", c.kind, "bars", len(bars))

	return c, nil
}

// RenderBarWithErrorBars draws a basic bar chart, a capped whisker of
// errs.Values[i] on top of bar i and the bar's value just above its top.
func RenderBarWithErrorBars(categories []string, series Series, errs ErrorSeries, cfg Config) (*Canvas, error) {
	if err := checkSeriesList(categories, []Series{series}); err != nil {
		return nil, err
	}
	if err := checkErrors(categories, series, errs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := newCanvas(KindErrorBars, categories, cfg)
	c.plot.NominalX(categories...)

	bars := c.drawSeries(series, ticks(len(categories)), nil, cfg.seriesColor(0), false)

	type errorPoints struct {
		plotter.XYs
		plotter.YErrors
	}

	pts := make(plotter.XYs, len(bars))
	yerrs := make(plotter.Errors, len(bars))
	centres := make([]float64, len(bars))
	tops := make([]float64, len(bars))
	for i, bar := range bars {
		pts[i].X, pts[i].Y = bar.Centre, bar.Top
		yerrs[i].Low, yerrs[i].High = errs.Values[i], errs.Values[i]
		centres[i], tops[i] = bar.Centre, bar.Top

		c.errs = append(c.errs, ErrorBar{Series: series.Name, At: Point{X: bar.Centre, Y: bar.Top}, Err: errs.Values[i]})
	}

	// Error bars
	e, err := plotter.NewYErrorBars(errorPoints{XYs: pts, YErrors: plotter.YErrors(yerrs)})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	e.LineStyle.Color = color.Black
	e.LineStyle.Width = vg.Points(1)
	e.CapWidth = vg.Points(cfg.CapWidth)
	c.plot.Add(e)

	// Value labels
	positions := LabelPositions(centres, tops, cfg.LabelMargin)
	xys := make(plotter.XYs, len(positions))
	texts := make([]string, len(positions))
	for i, pos := range positions {
		xys[i].X, xys[i].Y = pos.X, pos.Y
		texts[i] = strconv.FormatFloat(series.Values[i], 'g', -1, 64)
		c.labels = append(c.labels, Label{At: pos, Text: texts[i]})
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YBottom
		l.TextStyle[i].Font.Variant = "Sans"
		l.TextStyle[i].Font.Size = 10
	}
	c.plot.Add(l)

	if cfg.Trend {
		if err := c.addTrend(series.Name, ticks(len(categories)), series.Values, cfg.seriesColor(0)); err != nil {
			return nil, err
		}
	}

	slog.Debug("rendered chart", "kind", c.kind, "bars", len(bars), "labels", len(c.labels))

	return c, nil
}

// drawSeries records and plots one series at the given category-axis
// positions. bases may be nil for bars starting at zero.
func (c *Canvas) drawSeries(series Series, positions, bases []float64, fill color.RGBA, legend bool) []Bar {
	bars := make([]Bar, len(series.Values))
	for i, v := range series.Values {
		var base float64
		if bases != nil {
			base = bases[i]
		}
		bars[i] = Bar{
			Series:   series.Name,
			Category: c.categories[i],
			Centre:   positions[i],
			Width:    c.cfg.BarWidth,
			Base:     base,
			Top:      base + v,
		}
	}
	c.bars = append(c.bars, bars...)

	var edge color.Color
	if c.cfg.EdgeColor != "" {
		edge, _ = ParseColor(c.cfg.EdgeColor)
	}

	set := newBarSet(bars, c.horizontal, withAlpha(fill, c.cfg.Alpha), edge)
	c.plot.Add(set)

	if legend {
		c.plot.Legend.Add(series.Name, set)
	}

	return bars
}
