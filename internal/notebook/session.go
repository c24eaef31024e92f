// Package notebook runs the bar chart tutorial: a fixed sequence of chart
// cells over the sample data.
package notebook

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/HamletTheHamster/barcharts/internal/animate"
	"github.com/HamletTheHamster/barcharts/internal/chart"
)

// fileNames maps each kind to the base name it is exported under.
var fileNames = map[chart.Kind]string{
	chart.KindBasic:      "basic_bar",
	chart.KindGrouped:    "grouped_bar",
	chart.KindStacked:    "stacked_bar",
	chart.KindHorizontal: "horizontal_bar",
	chart.KindErrorBars:  "error_bar",
}

// FileName returns the base name a kind is exported under.
func FileName(kind chart.Kind) string { return fileNames[kind] }

// Session runs the chart cells in order.
type Session struct {
	// Dir receives exported images.
	Dir string
	// Formats are the image extensions written for each export, "png" if
	// empty.
	Formats []string
	// All exports every chart, not only the basic one.
	All bool
	// Display, if set, shows each chart before it is released.
	Display chart.Display
	// Animation, if set, is the path of a GIF stepping through every chart,
	// each shown for FrameDelay hundredths of a second.
	Animation  string
	FrameDelay int

	Configs Configs
	Data    Data
}

// New returns a session over the sample data with the default styling.
func New(dir string) *Session {
	return &Session{
		Dir:        dir,
		Formats:    []string{"png"},
		FrameDelay: 150,
		Configs:    DefaultConfigs(),
		Data:       Sample(),
	}
}

// Run executes every cell. The first failure stops the session.
func (s *Session) Run() error {
	var frames []image.Image

	for _, kind := range chart.Kinds {
		frame, err := s.cell(kind)
		if err != nil {
			return err
		}
		if frame != nil {
			frames = append(frames, frame)
		}
	}

	if s.Animation != "" {
		return s.writeAnimation(frames)
	}
	return nil
}

// Render draws one chart kind. The caller owns the returned canvas.
func (s *Session) Render(kind chart.Kind) (*chart.Canvas, error) {
	cfg, err := s.Configs.For(kind)
	if err != nil {
		return nil, err
	}

	d := s.Data
	if len(d.Series) == 0 {
		return nil, fmt.Errorf("%w: no sample series", chart.ErrInvalidInput)
	}

	switch kind {
	case chart.KindBasic:
		return chart.RenderBasicBar(d.Categories, d.Series[0], cfg)
	case chart.KindGrouped:
		return chart.RenderGroupedBar(d.Categories, d.Series, cfg)
	case chart.KindStacked:
		return chart.RenderStackedBar(d.Categories, d.Series, cfg)
	case chart.KindHorizontal:
		return chart.RenderHorizontalBar(d.Categories, d.Series[0], cfg)
	case chart.KindErrorBars:
		series, err := d.seriesNamed(d.Errors.Of)
		if err != nil {
			return nil, err
		}
		return chart.RenderBarWithErrorBars(d.Categories, series, d.Errors, cfg)
	}

	return nil, fmt.Errorf("%w: unknown chart kind %q", chart.ErrInvalidInput, kind)
}

// RenderOne draws one chart kind and exports it to path.
func (s *Session) RenderOne(kind chart.Kind, path string) error {
	c, err := s.Render(kind)
	if err != nil {
		return fmt.Errorf("%s chart: %w", kind, err)
	}

	if s.Display != nil {
		if err := s.Display.Show(c); err != nil {
			c.Close()
			return fmt.Errorf("showing %s chart: %w", kind, err)
		}
	}

	if err := chart.Export(c, path); err != nil {
		return fmt.Errorf("exporting %s chart: %w", kind, err)
	}

	slog.Info("exported chart", "kind", kind, "path", path)

	return nil
}

// cell renders, shows and exports one chart, returning its raster frame
// when an animation is requested.
func (s *Session) cell(kind chart.Kind) (image.Image, error) {
	c, err := s.Render(kind)
	if err != nil {
		return nil, fmt.Errorf("%s chart: %w", kind, err)
	}
	defer c.Close()

	if s.Display != nil {
		if err := s.Display.Show(c); err != nil {
			return nil, fmt.Errorf("showing %s chart: %w", kind, err)
		}
	}

	var frame image.Image
	if s.Animation != "" {
		if frame, err = c.Image(); err != nil {
			return nil, fmt.Errorf("rasterising %s chart: %w", kind, err)
		}
	}

	if kind != chart.KindBasic && !s.All {
		return frame, nil
	}

	formats := s.Formats
	if len(formats) == 0 {
		formats = []string{"png"}
	}
	// A chart is written in every format or in none.
	written := make([]string, 0, len(formats))
	for _, format := range formats {
		path := filepath.Join(s.Dir, fileNames[kind]+"."+format)
		if err := c.Save(path); err != nil {
			for _, w := range written {
				_ = os.Remove(w)
			}
			return nil, fmt.Errorf("exporting %s chart: %w", kind, err)
		}
		written = append(written, path)
	}
	for _, path := range written {
		slog.Info("exported chart", "kind", kind, "path", path)
	}

	return frame, nil
}

func (s *Session) writeAnimation(frames []image.Image) error {
	var buf bytes.Buffer
	if err := animate.Encode(&buf, frames, s.FrameDelay); err != nil {
		return fmt.Errorf("%w: %w", chart.ErrInvalidInput, err)
	}

	if err := os.WriteFile(s.Animation, buf.Bytes(), 0o644); err != nil {
		_ = os.Remove(s.Animation)
		return fmt.Errorf("%w: %w", chart.ErrIO, err)
	}

	slog.Info("exported animation", "path", s.Animation, "frames", len(frames))

	return nil
}

func (d Data) seriesNamed(name string) (chart.Series, error) {
	for _, s := range d.Series {
		if s.Name == name {
			return s, nil
		}
	}
	return chart.Series{}, fmt.Errorf("%w: no series named %q for error bars", chart.ErrInvalidInput, name)
}
