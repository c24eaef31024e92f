package chart

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot/vg"
)

// GridAxis selects which axis carries gridlines.
type GridAxis string

const (
	GridNone GridAxis = "none"
	GridX    GridAxis = "x"
	GridY    GridAxis = "y"
	GridBoth GridAxis = "both"
)

// GridStyle is the gridline pattern ("-", "--", ":" or "-.") and opacity.
type GridStyle struct {
	Line  string  `yaml:"line"`
	Alpha float64 `yaml:"alpha"`
}

// Config enumerates the options a chart recognises. Start from
// DefaultConfig; the zero value does not validate.
type Config struct {
	// FigureSize is width and height in inches.
	FigureSize [2]float64 `yaml:"figure_size"`
	// BarWidth is in data units, where neighbouring categories are 1 apart.
	BarWidth  float64  `yaml:"bar_width"`
	Colors    []string `yaml:"colors"`
	EdgeColor string   `yaml:"edge_color"`
	Alpha     float64  `yaml:"alpha"`

	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`

	GridAxis  GridAxis  `yaml:"grid_axis"`
	GridStyle GridStyle `yaml:"grid_style"`
	Legend    bool      `yaml:"legend"`

	// CapWidth is the error whisker cap width in points.
	CapWidth float64 `yaml:"cap_width"`
	// LabelMargin is the gap between a bar top and its value label, in data
	// units.
	LabelMargin float64 `yaml:"label_margin"`

	Trend bool `yaml:"trend"`
}

// DefaultConfig returns a single-series vertical bar chart configuration.
func DefaultConfig() Config {
	return Config{
		FigureSize:  [2]float64{8, 5},
		BarWidth:    0.8,
		Alpha:       1,
		XLabel:      "Categories",
		YLabel:      "Values",
		GridAxis:    GridY,
		GridStyle:   GridStyle{Line: "--", Alpha: 0.7},
		CapWidth:    10,
		LabelMargin: 0.1,
	}
}

// Validate reports every invalid option at once.
func (cfg Config) Validate() error {
	var merr error

	if cfg.FigureSize[0] <= 0 || cfg.FigureSize[1] <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("figure size %v must be positive", cfg.FigureSize))
	}
	if cfg.BarWidth <= 0 || cfg.BarWidth > 1 {
		merr = multierror.Append(merr, fmt.Errorf("bar width %v must be in (0, 1]", cfg.BarWidth))
	}
	for _, c := range cfg.Colors {
		if _, err := ParseColor(c); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if cfg.EdgeColor != "" {
		if _, err := ParseColor(cfg.EdgeColor); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		merr = multierror.Append(merr, fmt.Errorf("alpha %v must be in (0, 1]", cfg.Alpha))
	}

	switch cfg.GridAxis {
	case GridNone, GridX, GridY, GridBoth:
	default:
		merr = multierror.Append(merr, fmt.Errorf("unknown grid axis %q", cfg.GridAxis))
	}
	if _, err := dashes(cfg.GridStyle.Line); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.GridStyle.Alpha < 0 || cfg.GridStyle.Alpha > 1 {
		merr = multierror.Append(merr, fmt.Errorf("grid alpha %v must be in [0, 1]", cfg.GridStyle.Alpha))
	}

	if cfg.CapWidth < 0 {
		merr = multierror.Append(merr, fmt.Errorf("cap width %v must not be negative", cfg.CapWidth))
	}
	if cfg.LabelMargin < 0 {
		merr = multierror.Append(merr, fmt.Errorf("label margin %v must not be negative", cfg.LabelMargin))
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, merr)
	}
	return nil
}

func (cfg Config) size() (vg.Length, vg.Length) {
	return vg.Length(cfg.FigureSize[0]) * vg.Inch, vg.Length(cfg.FigureSize[1]) * vg.Inch
}

func dashes(line string) ([]vg.Length, error) {
	switch line {
	case "", "-":
		return nil, nil
	case "--":
		return []vg.Length{vg.Points(3.7), vg.Points(1.6)}, nil
	case ":":
		return []vg.Length{vg.Points(1), vg.Points(1.65)}, nil
	case "-.":
		return []vg.Length{vg.Points(6.4), vg.Points(1.6), vg.Points(1), vg.Points(1.6)}, nil
	}
	return nil, fmt.Errorf("unknown grid line style %q", line)
}
