//go:build gnuplot

package display

import (
	"fmt"
	"log/slog"

	"github.com/Arafatk/glot"

	"github.com/HamletTheHamster/barcharts/internal/chart"
)

// Show implements chart.Display.
func (g Gnuplot) Show(c *chart.Canvas) error {
	if c.Closed() {
		return chart.ErrCanvasClosed
	}

	p, err := glot.NewPlot(2, g.Persist, g.Debug)
	if err != nil {
		return fmt.Errorf("starting gnuplot: %w", err)
	}
	defer p.Close()

	cfg := c.Config()
	if err := p.SetTitle(cfg.Title); err != nil {
		return fmt.Errorf("gnuplot title: %w", err)
	}
	xlabel, ylabel := cfg.XLabel, cfg.YLabel
	if c.Horizontal() {
		xlabel, ylabel = ylabel, xlabel
	}
	if err := p.SetXLabel(xlabel); err != nil {
		return fmt.Errorf("gnuplot x label: %w", err)
	}
	if err := p.SetYLabel(ylabel); err != nil {
		return fmt.Errorf("gnuplot y label: %w", err)
	}

	for _, pg := range PointGroups(c) {
		if err := p.AddPointGroup(pg.Name, pg.Style, pg.Data); err != nil {
			return fmt.Errorf("gnuplot group %q: %w", pg.Name, err)
		}
	}

	slog.Debug("shown chart", "kind", c.Kind(), "persist", g.Persist)

	return nil
}
