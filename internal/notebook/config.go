package notebook

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/HamletTheHamster/barcharts/internal/chart"
)

// Configs holds one chart configuration per kind.
type Configs struct {
	Basic      chart.Config `yaml:"basic"`
	Grouped    chart.Config `yaml:"grouped"`
	Stacked    chart.Config `yaml:"stacked"`
	Horizontal chart.Config `yaml:"horizontal"`
	ErrorBars  chart.Config `yaml:"errorbars"`
}

// DefaultConfigs returns the styling of each chart in the session.
func DefaultConfigs() Configs {
	basic := chart.DefaultConfig()
	basic.Title = "Basic Bar Chart"
	basic.Colors = []string{"skyblue"}

	grouped := chart.DefaultConfig()
	grouped.FigureSize = [2]float64{10, 6}
	grouped.BarWidth = 0.25
	grouped.Title = "Grouped Bar Chart"
	grouped.Colors = []string{"salmon", "lightgreen", "skyblue"}
	grouped.Legend = true

	stacked := chart.DefaultConfig()
	stacked.Title = "Stacked Bar Chart"
	stacked.Colors = []string{"salmon", "lightgreen", "skyblue"}
	stacked.Legend = true

	horizontal := chart.DefaultConfig()
	horizontal.Title = "Horizontal Bar Chart"
	horizontal.Colors = []string{"purple"}
	horizontal.XLabel = "Values"
	horizontal.YLabel = "Categories"
	horizontal.GridAxis = chart.GridX

	errorBars := chart.DefaultConfig()
	errorBars.Title = "Customized Bar Chart with Error Bars"
	errorBars.Colors = []string{"teal"}
	errorBars.EdgeColor = "black"
	errorBars.Alpha = 0.7

	return Configs{
		Basic:      basic,
		Grouped:    grouped,
		Stacked:    stacked,
		Horizontal: horizontal,
		ErrorBars:  errorBars,
	}
}

// For returns the configuration of one chart kind.
func (c Configs) For(kind chart.Kind) (chart.Config, error) {
	switch kind {
	case chart.KindBasic:
		return c.Basic, nil
	case chart.KindGrouped:
		return c.Grouped, nil
	case chart.KindStacked:
		return c.Stacked, nil
	case chart.KindHorizontal:
		return c.Horizontal, nil
	case chart.KindErrorBars:
		return c.ErrorBars, nil
	}
	return chart.Config{}, fmt.Errorf("%w: unknown chart kind %q", chart.ErrInvalidInput, kind)
}

// LoadConfigs reads a YAML style file over the defaults. Keys left out keep
// their default; unknown keys are an error.
func LoadConfigs(path string) (Configs, error) {
	cfgs := DefaultConfigs()

	f, err := os.Open(path)
	if err != nil {
		return cfgs, fmt.Errorf("%w: %w", chart.ErrIO, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfgs); err != nil && !errors.Is(err, io.EOF) {
		return cfgs, fmt.Errorf("%w: %s: %w", chart.ErrInvalidInput, path, err)
	}

	return cfgs, nil
}
