//go:build !gnuplot

package display

import (
	"fmt"
	"os/exec"

	"github.com/HamletTheHamster/barcharts/internal/chart"
)

// Show implements chart.Display. This build has no gnuplot backend.
func (g Gnuplot) Show(c *chart.Canvas) error {
	if c.Closed() {
		return chart.ErrCanvasClosed
	}
	return fmt.Errorf("gnuplot preview needs a build tagged gnuplot: %w", exec.ErrNotFound)
}
