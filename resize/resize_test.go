package resize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/pngcap/pixel"
)

func at(t *testing.T, p *pixel.RGBA, x, y int) [4]uint8 {
	r, g, b, a := p.At(x, y)
	return [4]uint8{r, g, b, a}
}

func TestBilinearCorners(t *testing.T) {
	src := &pixel.ARGB{
		Pix: []uint32{
			0xff102030, 0xff405060,
			0xff708090, 0xffa0b0c0,
		},
		Width:  2,
		Height: 2,
	}

	dst, err := Bilinear(src, 4, 4)
	require.Nil(t, err)

	w, h := dst.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	// The four source corners must land exactly on the destination
	// corners.
	assert.Equal(t, [4]uint8{0x10, 0x20, 0x30, 0xff}, at(t, dst, 0, 0))
	assert.Equal(t, [4]uint8{0x40, 0x50, 0x60, 0xff}, at(t, dst, 3, 0))
	assert.Equal(t, [4]uint8{0x70, 0x80, 0x90, 0xff}, at(t, dst, 0, 3))
	assert.Equal(t, [4]uint8{0xa0, 0xb0, 0xc0, 0xff}, at(t, dst, 3, 3))
}

func TestBilinearMidpoint(t *testing.T) {
	// 2x1 grid widened to 3x1; the middle pixel sits exactly halfway
	// between the two sources.
	src := &pixel.ARGB{
		Pix:    []uint32{0xff000a14, 0xff001428},
		Width:  2,
		Height: 1,
	}

	dst, err := Bilinear(src, 3, 1)
	require.Nil(t, err)

	assert.Equal(t, [4]uint8{0, 15, 30, 0xff}, at(t, dst, 1, 0))
}

func TestBilinearDegenerate(t *testing.T) {
	// A single source pixel stretched in both directions must replicate
	// without dividing by zero.
	src := &pixel.ARGB{
		Pix:    []uint32{0x80402010},
		Width:  1,
		Height: 1,
	}

	dst, err := Bilinear(src, 3, 3)
	require.Nil(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, [4]uint8{0x40, 0x20, 0x10, 0x80}, at(t, dst, x, y))
		}
	}
}

func TestBilinearChannelIndependence(t *testing.T) {
	// Saturated single channels must not bleed into their neighbours.
	src := &pixel.ARGB{
		Pix: []uint32{
			0xffff0000, 0xff00ff00,
		},
		Width:  2,
		Height: 1,
	}

	dst, err := Bilinear(src, 5, 1)
	require.Nil(t, err)

	for x := 0; x < 5; x++ {
		r, g, b, a := dst.At(x, 0)
		assert.Equal(t, uint8(0), b)
		assert.Equal(t, uint8(0xff), a)
		// Red falls as green rises; at every sample the pair sums to
		// 255 give or take rounding.
		sum := int(r) + int(g)
		assert.True(t, sum >= 254 && sum <= 256, "sum %d at %d", sum, x)
	}
}

func TestBilinearErrors(t *testing.T) {
	src := &pixel.ARGB{
		Pix:    []uint32{0, 0, 0, 0},
		Width:  2,
		Height: 2,
	}

	_, err := Bilinear(nil, 4, 4)
	assert.NotNil(t, err)

	_, err = Bilinear(src, 1, 4)
	assert.NotNil(t, err)

	_, err = Bilinear(src, 4, 1)
	assert.NotNil(t, err)

	_, err = Bilinear(&pixel.ARGB{}, 4, 4)
	assert.NotNil(t, err)
}
