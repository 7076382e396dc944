/*
Package pixel defines the read-only pixel sources accepted by the encoder.

Three source layouts are supported, matching how an overlay hands pixels
over: a row-major array of packed 32-bit ARGB words, a raw interleaved RGBA
byte buffer, and a strided byte buffer with an explicit row pitch as found
in locked device-texture memory.
*/
package pixel

// Source is a read-only view over a pixel grid. At returns the channels of
// the pixel at (x, y) in R, G, B, A order; coordinates are 0-based and must
// be within [0, width) and [0, height).
type Source interface {
	Size() (width, height int)
	At(x, y int) (r, g, b, a uint8)
}

// ARGB is a row-major array of packed 0xAARRGGBB words, indexed [y*width+x].
type ARGB struct {
	Pix    []uint32
	Width  int
	Height int
}

// Size returns the dimensions of the grid.
func (p *ARGB) Size() (int, int) {
	return p.Width, p.Height
}

// At unpacks the pixel at (x, y). Alpha sits in the most significant byte.
func (p *ARGB) At(x, y int) (uint8, uint8, uint8, uint8) {
	c := p.Pix[y*p.Width+x]
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA is a raw interleaved byte buffer, 4 bytes per pixel in R,G,B,A order
// with no padding between rows.
type RGBA struct {
	Pix    []byte
	Width  int
	Height int
}

// Size returns the dimensions of the grid.
func (p *RGBA) Size() (int, int) {
	return p.Width, p.Height
}

// At returns the pixel at (x, y).
func (p *RGBA) At(x, y int) (uint8, uint8, uint8, uint8) {
	i := (y*p.Width + x) << 2
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]
}

// Strided is a raw byte buffer with an explicit row pitch in bytes, as
// obtained from locked texture memory. Each pixel is a little-endian packed
// ARGB word, so the bytes of a pixel run B,G,R,A. Pitch must be at least
// 4*Width; any bytes past 4*Width in a row are padding and never read.
type Strided struct {
	Pix    []byte
	Width  int
	Height int
	Pitch  int
}

// Size returns the dimensions of the grid.
func (p *Strided) Size() (int, int) {
	return p.Width, p.Height
}

// At returns the pixel at (x, y).
func (p *Strided) At(x, y int) (uint8, uint8, uint8, uint8) {
	i := y*p.Pitch + x<<2
	return p.Pix[i+2], p.Pix[i+1], p.Pix[i], p.Pix[i+3]
}
