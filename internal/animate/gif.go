// Package animate assembles rendered charts into an animated GIF.
package animate

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"sort"
	"sync"
)

type frameResult struct {
	Index    int
	Paletted *image.Paletted
}

// Encode writes frames as one GIF, showing each for delay hundredths of a
// second. Frames are converted to the Plan 9 palette concurrently; the
// logical screen is as large as the largest frame.
func Encode(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return errors.New("animate: no frames")
	}

	pal := color.Palette(palette.Plan9)

	resultCh := make(chan frameResult, len(frames))
	var wg sync.WaitGroup

	for index, img := range frames {
		wg.Add(1)
		go convertToPaletted(index, img, pal, resultCh, &wg)
	}

	wg.Wait()
	close(resultCh)

	var frameResults []frameResult
	for result := range resultCh {
		frameResults = append(frameResults, result)
	}

	sort.Slice(frameResults, func(i, j int) bool {
		return frameResults[i].Index < frameResults[j].Index
	})

	anim := &gif.GIF{}
	for _, result := range frameResults {
		anim.Image = append(anim.Image, result.Paletted)
		anim.Delay = append(anim.Delay, delay)

		b := result.Paletted.Bounds()
		anim.Config.Width = max(anim.Config.Width, b.Dx())
		anim.Config.Height = max(anim.Config.Height, b.Dy())
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("animate: %w", err)
	}
	return nil
}

func convertToPaletted(index int, img image.Image, pal color.Palette, resultCh chan<- frameResult, wg *sync.WaitGroup) {
	defer wg.Done()

	b := img.Bounds()
	paletted := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), pal)
	draw.Draw(paletted, paletted.Bounds(), img, b.Min, draw.Over)

	resultCh <- frameResult{
		Index:    index,
		Paletted: paletted,
	}
}
