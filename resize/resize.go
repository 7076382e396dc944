/*
Package resize implements bilinear upscaling of pixel sources, used to
enlarge low-resolution captures before encoding.
*/
package resize

import (
	"fmt"

	"github.com/bodgit/pngcap/pixel"
)

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func lerp2(c00, c10, c01, c11 uint8, fx, fy float64) uint8 {
	top := float64(c00)*(1-fx) + float64(c10)*fx
	bottom := float64(c01)*(1-fx) + float64(c11)*fx
	v := top*(1-fy) + bottom*fy + 0.5
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}

// Bilinear resamples src to width by height and returns the result as a
// fresh RGBA grid. The target must be at least as large as the source in
// both dimensions. Each channel is interpolated independently on its
// unpacked 8-bit value; source corner pixels are reproduced exactly at the
// destination corners.
func Bilinear(src pixel.Source, width, height int) (*pixel.RGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("resize: nil source")
	}
	srcW, srcH := src.Size()
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("resize: invalid source size %dx%d", srcW, srcH)
	}
	if width < srcW || height < srcH {
		return nil, fmt.Errorf("resize: target %dx%d smaller than source %dx%d", width, height, srcW, srcH)
	}

	// A one-pixel-wide target collapses the ratio to zero rather than
	// dividing by zero.
	var rx, ry float64
	if width > 1 {
		rx = float64(srcW-1) / float64(width-1)
	}
	if height > 1 {
		ry = float64(srcH-1) / float64(height-1)
	}

	dst := &pixel.RGBA{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}

	i := 0
	for dy := 0; dy < height; dy++ {
		sy := float64(dy) * ry
		y0 := clamp(int(sy), srcH-1)
		y1 := clamp(y0+1, srcH-1)
		fy := sy - float64(y0)
		for dx := 0; dx < width; dx++ {
			sx := float64(dx) * rx
			x0 := clamp(int(sx), srcW-1)
			x1 := clamp(x0+1, srcW-1)
			fx := sx - float64(x0)

			r00, g00, b00, a00 := src.At(x0, y0)
			r10, g10, b10, a10 := src.At(x1, y0)
			r01, g01, b01, a01 := src.At(x0, y1)
			r11, g11, b11, a11 := src.At(x1, y1)

			dst.Pix[i+0] = lerp2(r00, r10, r01, r11, fx, fy)
			dst.Pix[i+1] = lerp2(g00, g10, g01, g11, fx, fy)
			dst.Pix[i+2] = lerp2(b00, b10, b01, b11, fx, fy)
			dst.Pix[i+3] = lerp2(a00, a10, a01, a11, fx, fy)
			i += 4
		}
	}

	return dst, nil
}
