package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var formats = map[string]bool{
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"png":  true,
	"svg":  true,
	"tex":  true,
	"tif":  true,
	"tiff": true,
}

// FormatOf returns the image format implied by path's extension.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return "", fmt.Errorf("%w: unsupported image format %q", ErrInvalidInput, filepath.Ext(path))
	}
	return ext, nil
}

// Encode serialises the canvas in the given format ("png", "svg", ...).
func (c *Canvas) Encode(w io.Writer, format string) error {
	if c.Closed() {
		return ErrCanvasClosed
	}
	if !formats[format] {
		return fmt.Errorf("%w: unsupported image format %q", ErrInvalidInput, format)
	}

	width, height := c.Size()
	wt, err := c.plot.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Image rasterises the canvas at its figure size.
func (c *Canvas) Image() (image.Image, error) {
	if c.Closed() {
		return nil, ErrCanvasClosed
	}

	width, height := c.Size()
	img := vgimg.New(width, height)
	c.plot.Draw(draw.New(img))

	return img.Image(), nil
}

// Save writes the canvas to path without releasing it. The whole image is
// rendered before the file is created, and a partially written file is
// removed.
func (c *Canvas) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	_, werr := buf.WriteTo(f)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}

	slog.Debug("saved chart", "kind", c.kind, "path", path)

	return nil
}

// Export writes the canvas to path and releases it, whether or not the
// write succeeded.
func Export(c *Canvas, path string) error {
	if c.Closed() {
		return ErrCanvasClosed
	}
	defer c.Close()

	return c.Save(path)
}
