package pngcap

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"

	"github.com/bodgit/pngcap/pixel"
	"github.com/ericpauley/go-quantize/quantize"
)

const (
	thumbWidth  = 64
	thumbHeight = 40
	thumbColors = 48
)

// sourceImage adapts a pixel.Source to the stdlib image.Image interface so
// it can be drawn and quantized.
type sourceImage struct {
	src pixel.Source
}

func (m sourceImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (m sourceImage) Bounds() image.Rectangle {
	w, h := m.src.Size()
	return image.Rect(0, 0, w, h)
}

func (m sourceImage) At(x, y int) color.Color {
	r, g, b, a := m.src.At(x, y)
	return color.NRGBA{r, g, b, a}
}

// Thumbnail renders src as a small quantized GIF suitable for storing in
// the catalog. The source is fit inside 64 by 40 preserving aspect ratio
// using nearest-neighbour sampling, then reduced with a median cut
// quantizer.
func Thumbnail(src pixel.Source) ([]byte, error) {
	w, h := src.Size()

	tw, th := w, h
	if tw > thumbWidth {
		th = th * thumbWidth / tw
		tw = thumbWidth
	}
	if th > thumbHeight {
		tw = tw * thumbHeight / th
		th = thumbHeight
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	small := image.NewNRGBA(image.Rect(0, 0, tw, th))
	for y := 0; y < th; y++ {
		sy := y * h / th
		for x := 0; x < tw; x++ {
			sx := x * w / tw
			r, g, b, a := src.At(sx, sy)
			small.SetNRGBA(x, y, color.NRGBA{r, g, b, a})
		}
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(small.Bounds(), q.Quantize(make(color.Palette, 0, thumbColors), small))
	draw.Draw(pm, pm.Bounds(), small, image.Point{}, draw.Src)

	b := new(bytes.Buffer)
	if err := gif.Encode(b, pm, nil); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
