package notebook_test

import (
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/barcharts/internal/chart"
	"github.com/HamletTheHamster/barcharts/internal/notebook"
)

// recorder is a chart.Display that remembers every canvas it was shown.
type recorder struct {
	shown []*chart.Canvas
	err   error
}

func (r *recorder) Show(c *chart.Canvas) error {
	for _, prev := range r.shown {
		if !prev.Closed() {
			return errors.New("previous canvas still open")
		}
	}
	if c.Closed() {
		return errors.New("shown a closed canvas")
	}
	r.shown = append(r.shown, c)
	return r.err
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}

	s := notebook.New(dir)
	s.Display = rec
	require.NoError(t, s.Run())

	require.Len(t, rec.shown, len(chart.Kinds))
	for i, c := range rec.shown {
		assert.Equal(t, chart.Kinds[i], c.Kind())
		assert.True(t, c.Closed())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "basic_bar.png", entries[0].Name())
}

func TestRunAllFormats(t *testing.T) {
	dir := t.TempDir()

	s := notebook.New(dir)
	s.All = true
	s.Formats = []string{"png", "svg"}
	require.NoError(t, s.Run())

	for _, kind := range chart.Kinds {
		for _, ext := range s.Formats {
			assert.FileExists(t, filepath.Join(dir, notebook.FileName(kind)+"."+ext))
		}
	}
}

func TestRunStopsOnFailure(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{err: errors.New("no window")}

	s := notebook.New(dir)
	s.Display = rec
	require.ErrorContains(t, s.Run(), "no window")

	assert.Len(t, rec.shown, 1)
	assert.NoFileExists(t, filepath.Join(dir, "basic_bar.png"))
}

func TestRunFormatFailureRemovesEarlierFormats(t *testing.T) {
	dir := t.TempDir()

	s := notebook.New(dir)
	s.Formats = []string{"png", "bmp"}
	require.ErrorIs(t, s.Run(), chart.ErrInvalidInput)

	assert.NoFileExists(t, filepath.Join(dir, "basic_bar.png"))
	assert.NoFileExists(t, filepath.Join(dir, "basic_bar.bmp"))
}

func TestRunUnwritableDir(t *testing.T) {
	s := notebook.New(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, s.Run(), chart.ErrIO)
}

func TestRunMismatchedSample(t *testing.T) {
	s := notebook.New(t.TempDir())
	s.Data.Series[1].Values = []float64{1, 2, 3}

	err := s.Run()
	require.ErrorIs(t, err, chart.ErrInvalidInput)
	assert.Contains(t, err.Error(), "grouped")
}

func TestRenderOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stacked.svg")

	s := notebook.New("")
	require.NoError(t, s.RenderOne(chart.KindStacked, path))
	assert.FileExists(t, path)

	require.ErrorIs(t, s.RenderOne("pie", path), chart.ErrInvalidInput)
}

func TestRenderStackTops(t *testing.T) {
	s := notebook.New("")

	c, err := s.Render(chart.KindStacked)
	require.NoError(t, err)
	defer c.Close()

	var tops []float64
	for _, b := range c.SeriesBars("Group 3") {
		tops = append(tops, b.Top)
	}
	assert.Equal(t, []float64{9, 10, 9, 8}, tops)
}

func TestRenderErrorBarsBinding(t *testing.T) {
	s := notebook.New("")
	s.Data.Errors.Of = "Group 9"

	_, err := s.Render(chart.KindErrorBars)
	require.ErrorIs(t, err, chart.ErrInvalidInput)
}

func TestRunAnimation(t *testing.T) {
	dir := t.TempDir()

	s := notebook.New(dir)
	s.Animation = filepath.Join(dir, "tour.gif")
	require.NoError(t, s.Run())

	f, err := os.Open(s.Animation)
	require.NoError(t, err)
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, len(chart.Kinds))
	assert.Equal(t, 150, anim.Delay[0])
}
