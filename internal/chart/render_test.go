package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/barcharts/internal/chart"
)

var (
	categories = []string{"A", "B", "C", "D"}
	group1     = chart.Series{Name: "Group 1", Values: []float64{4, 3, 2, 5}}
	group2     = chart.Series{Name: "Group 2", Values: []float64{2, 5, 3, 1}}
	group3     = chart.Series{Name: "Group 3", Values: []float64{3, 2, 4, 2}}
	errs1      = chart.ErrorSeries{Of: "Group 1", Values: []float64{0.5, 0.3, 0.4, 0.2}}
)

func groupedConfig() chart.Config {
	cfg := chart.DefaultConfig()
	cfg.BarWidth = 0.25
	cfg.Legend = true
	return cfg
}

func TestRenderBasicBar(t *testing.T) {
	c, err := chart.RenderBasicBar(categories, group1, chart.DefaultConfig())
	require.NoError(t, err)
	defer c.Close()

	bars := c.Bars()
	require.Len(t, bars, len(categories))
	for i, b := range bars {
		assert.Equal(t, categories[i], b.Category)
		assert.InDelta(t, float64(i), b.Centre, 1e-12)
		assert.InDelta(t, 0, b.Base, 1e-12)
		assert.InDelta(t, group1.Values[i], b.Height(), 1e-12)
	}
	assert.Equal(t, chart.KindBasic, c.Kind())
	assert.False(t, c.Horizontal())
	assert.NotNil(t, c.Plot())
}

func TestRenderGroupedBar(t *testing.T) {
	list := []chart.Series{group1, group2, group3}
	cfg := groupedConfig()

	c, err := chart.RenderGroupedBar(categories, list, cfg)
	require.NoError(t, err)
	defer c.Close()

	require.Len(t, c.Bars(), len(list)*len(categories))
	assert.Equal(t, []string{"Group 1", "Group 2", "Group 3"}, c.SeriesNames())

	for i := range categories {
		var cluster []chart.Bar
		for _, name := range c.SeriesNames() {
			cluster = append(cluster, c.SeriesBars(name)[i])
		}

		// Centred on the tick.
		var sum float64
		for _, b := range cluster {
			sum += b.Centre
		}
		assert.InDelta(t, float64(i), sum/float64(len(cluster)), 1e-12)

		// Adjacent without overlap.
		for s := 1; s < len(cluster); s++ {
			prevRight := cluster[s-1].Centre + cluster[s-1].Width/2
			left := cluster[s].Centre - cluster[s].Width/2
			assert.LessOrEqual(t, prevRight, left+1e-12)
		}

		// Inside the category's slot.
		assert.GreaterOrEqual(t, cluster[0].Centre-cfg.BarWidth/2, float64(i)-0.5)
		assert.LessOrEqual(t, cluster[len(cluster)-1].Centre+cfg.BarWidth/2, float64(i)+0.5)
	}

	g1 := c.SeriesBars("Group 1")
	assert.InDelta(t, -0.25, g1[0].Centre, 1e-12)
	g3 := c.SeriesBars("Group 3")
	assert.InDelta(t, 3.25, g3[3].Centre, 1e-12)
}

func TestRenderGroupedBarTooWide(t *testing.T) {
	cfg := groupedConfig()
	cfg.BarWidth = 0.4

	_, err := chart.RenderGroupedBar(categories, []chart.Series{group1, group2, group3}, cfg)
	require.ErrorIs(t, err, chart.ErrInvalidInput)
}

func TestRenderStackedBar(t *testing.T) {
	list := []chart.Series{group1, group2, group3}

	c, err := chart.RenderStackedBar(categories, list, groupedConfig())
	require.NoError(t, err)
	defer c.Close()

	tops := make([]float64, len(categories))
	for _, b := range c.SeriesBars("Group 3") {
		for i, cat := range categories {
			if b.Category == cat {
				tops[i] = b.Top
			}
		}
	}
	assert.Equal(t, []float64{9, 10, 9, 8}, tops)

	g2 := c.SeriesBars("Group 2")
	require.Len(t, g2, 4)
	assert.Equal(t, []float64{4, 3, 2, 5}, []float64{g2[0].Base, g2[1].Base, g2[2].Base, g2[3].Base})

	for _, b := range c.Bars() {
		assert.InDelta(t, float64(indexOf(categories, b.Category)), b.Centre, 1e-12)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.GridAxis = chart.GridX
	cfg.XLabel, cfg.YLabel = "Values", "Categories"

	c, err := chart.RenderHorizontalBar(categories, group1, cfg)
	require.NoError(t, err)
	defer c.Close()

	assert.True(t, c.Horizontal())
	require.Len(t, c.Bars(), 4)
	for i, b := range c.Bars() {
		assert.InDelta(t, group1.Values[i], b.Height(), 1e-12)
	}
}

func TestRenderBarWithErrorBars(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.EdgeColor = "black"
	cfg.Alpha = 0.7

	c, err := chart.RenderBarWithErrorBars(categories, group1, errs1, cfg)
	require.NoError(t, err)
	defer c.Close()

	require.Len(t, c.ErrorBars(), 4)
	for i, e := range c.ErrorBars() {
		assert.InDelta(t, float64(i), e.At.X, 1e-12)
		assert.InDelta(t, group1.Values[i], e.At.Y, 1e-12)
		assert.InDelta(t, errs1.Values[i], e.Err, 1e-12)
	}

	labels := c.Labels()
	require.Len(t, labels, 4)
	assert.Equal(t, "4", labels[0].Text)
	assert.InDelta(t, 0, labels[0].At.X, 1e-12)
	assert.InDelta(t, 4.1, labels[0].At.Y, 1e-12)
	assert.InDelta(t, 5.1, labels[3].At.Y, 1e-12)
}

func TestRenderBarWithErrorBarsUnboundErrors(t *testing.T) {
	tcs := map[string]chart.ErrorSeries{
		"other series":   {Of: "Group 2", Values: errs1.Values},
		"unnamed":        {Values: errs1.Values},
		"negative":       {Of: "Group 1", Values: []float64{0.5, -0.3, 0.4, 0.2}},
		"short":          {Of: "Group 1", Values: []float64{0.5, 0.3, 0.4}},
		"no error value": {Of: "Group 1"},
	}

	for name, errs := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := chart.RenderBarWithErrorBars(categories, group1, errs, chart.DefaultConfig())
			require.ErrorIs(t, err, chart.ErrInvalidInput)
		})
	}
}

func TestRenderMismatchedLengths(t *testing.T) {
	short := chart.Series{Name: "Group 1", Values: []float64{4, 3, 2}}
	empty := chart.Series{Name: "Group 1"}
	cfg := groupedConfig()

	renders := map[string]func(chart.Series) error{
		"basic": func(s chart.Series) error {
			_, err := chart.RenderBasicBar(categories, s, cfg)
			return err
		},
		"grouped": func(s chart.Series) error {
			_, err := chart.RenderGroupedBar(categories, []chart.Series{group2, s}, cfg)
			return err
		},
		"stacked": func(s chart.Series) error {
			_, err := chart.RenderStackedBar(categories, []chart.Series{group2, s}, cfg)
			return err
		},
		"horizontal": func(s chart.Series) error {
			_, err := chart.RenderHorizontalBar(categories, s, cfg)
			return err
		},
		"errorbars": func(s chart.Series) error {
			_, err := chart.RenderBarWithErrorBars(categories, s, errs1, cfg)
			return err
		},
	}

	for name, render := range renders {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, render(short), chart.ErrInvalidInput)
			require.ErrorIs(t, render(empty), chart.ErrInvalidInput)
		})
	}
}

func TestRenderEmptyInputs(t *testing.T) {
	_, err := chart.RenderBasicBar(nil, chart.Series{}, chart.DefaultConfig())
	require.ErrorIs(t, err, chart.ErrInvalidInput)

	_, err = chart.RenderGroupedBar(categories, nil, groupedConfig())
	require.ErrorIs(t, err, chart.ErrInvalidInput)

	_, err = chart.RenderStackedBar(categories, []chart.Series{}, groupedConfig())
	require.ErrorIs(t, err, chart.ErrInvalidInput)
}

func TestRenderDuplicateSeries(t *testing.T) {
	twice := []chart.Series{group1, group2, group1}

	_, err := chart.RenderGroupedBar(categories, twice, groupedConfig())
	require.ErrorIs(t, err, chart.ErrInvalidInput)

	_, err = chart.RenderStackedBar(categories, twice, groupedConfig())
	require.ErrorIs(t, err, chart.ErrInvalidInput)
}

func TestRenderInvalidConfig(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.Colors = []string{"not-a-color"}

	_, err := chart.RenderBasicBar(categories, group1, cfg)
	require.ErrorIs(t, err, chart.ErrInvalidInput)
}

func TestRenderTrend(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.Trend = true

	c, err := chart.RenderBasicBar(categories, chart.Series{Name: "up", Values: []float64{1, 2, 3, 4}}, cfg)
	require.NoError(t, err)
	defer c.Close()

	require.Len(t, c.Trends(), 1)
	assert.InDelta(t, 1, c.Trends()[0].Slope, 1e-4)
	assert.InDelta(t, 1, c.Trends()[0].Intercept, 1e-4)

	s, err := chart.RenderStackedBar(categories, []chart.Series{group1, group2, group3}, func() chart.Config {
		cfg := groupedConfig()
		cfg.Trend = true
		return cfg
	}())
	require.NoError(t, err)
	defer s.Close()

	require.Len(t, s.Trends(), 1)
	assert.Equal(t, "total", s.Trends()[0].Series)

	_, err = chart.RenderBasicBar([]string{"A"}, chart.Series{Name: "one", Values: []float64{1}}, cfg)
	require.ErrorIs(t, err, chart.ErrInvalidInput)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
