/*
Package png implements a minimal PNG encoder for capture frames.

Only the three mandatory chunks are emitted: an IHDR describing an 8-bit
truecolor-with-alpha image, a single IDAT holding the zlib-wrapped
scanlines, and an empty IEND. Scanlines use filter type None and the zlib
stream uses uncompressed stored blocks, so encoding is lossless, fast, and
deterministic at the cost of file size. No palettes, interlacing, or
ancillary chunks are produced.
*/
package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bodgit/pngcap/crc32"
	"github.com/bodgit/pngcap/pixel"
	"github.com/bodgit/pngcap/resize"
	"github.com/bodgit/pngcap/zlib"
)

const header = "\x89PNG\r\n\x1a\n"

const (
	bitDepth           = 8
	colorTypeRGBA      = 6
	compressionDeflate = 0
	filterNone         = 0
	interlaceNone      = 0
)

// writeChunk frames b as a chunk of the given 4-byte type: big-endian
// length, type tag, data, then a big-endian CRC-32 over the tag and data.
func writeChunk(w io.Writer, b []byte, typ string) error {
	if len(typ) != 4 {
		return fmt.Errorf("png: invalid chunk type %q", typ)
	}
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(b)))
	if _, err := w.Write(length[:]); err != nil {
		return err
	}

	h := crc32.New()
	mw := io.MultiWriter(w, h)
	if _, err := io.WriteString(mw, typ); err != nil {
		return err
	}
	if _, err := mw.Write(b); err != nil {
		return err
	}
	_, err := w.Write(h.Sum(nil))
	return err
}

func writeIHDR(w io.Writer, width, height int) error {
	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = bitDepth
	ihdr[9] = colorTypeRGBA
	ihdr[10] = compressionDeflate
	ihdr[11] = filterNone
	ihdr[12] = interlaceNone
	return writeChunk(w, ihdr[:], "IHDR")
}

// writeIDAT streams every scanline through a zlib writer into a single
// IDAT chunk. Each row is one filter-type byte followed by width*4 channel
// bytes in R,G,B,A order, top to bottom.
func writeIDAT(w io.Writer, src pixel.Source) error {
	width, height := src.Size()

	b := new(bytes.Buffer)
	zw := zlib.NewWriter(b)

	row := make([]byte, 1+width*4)
	row[0] = filterNone
	for y := 0; y < height; y++ {
		i := 1
		for x := 0; x < width; x++ {
			r, g, bl, a := src.At(x, y)
			row[i+0] = r
			row[i+1] = g
			row[i+2] = bl
			row[i+3] = a
			i += 4
		}
		if _, err := zw.Write(row); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}

	return writeChunk(w, b.Bytes(), "IDAT")
}

func validate(src pixel.Source) (int, int, error) {
	if src == nil {
		return 0, 0, fmt.Errorf("png: nil pixel source")
	}
	width, height := src.Size()
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("png: invalid image size %dx%d", width, height)
	}
	return width, height, nil
}

// Encode writes src to w as a complete PNG file. The output is
// deterministic; encoding the same source twice produces identical bytes.
func Encode(w io.Writer, src pixel.Source) error {
	width, height, err := validate(src)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if err := writeIHDR(w, width, height); err != nil {
		return err
	}
	if err := writeIDAT(w, src); err != nil {
		return err
	}
	return writeChunk(w, nil, "IEND")
}

// EncodeUpscaled bilinearly resamples src to width by height before
// encoding it to w. The target must be at least as large as the source.
func EncodeUpscaled(w io.Writer, src pixel.Source, width, height int) error {
	if _, _, err := validate(src); err != nil {
		return err
	}
	dst, err := resize.Bilinear(src, width, height)
	if err != nil {
		return err
	}
	return Encode(w, dst)
}
