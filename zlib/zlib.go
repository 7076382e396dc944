/*
Package zlib implements a write-only zlib stream that frames its payload as
uncompressed DEFLATE stored blocks.

The stream is a valid RFC 1950 envelope around RFC 1951 stored blocks: a
2-byte header, one or more blocks of at most 65535 payload bytes each, and a
big-endian Adler-32 trailer over the uncompressed payload. No compression is
ever performed; any standard zlib reader inflates the stream back to the
original bytes. This trades size for an implementation that is small and
unconditionally correct.
*/
package zlib

import (
	"hash"
	"io"

	"github.com/bodgit/pngcap/adler32"
)

// maxStored is the largest payload a single stored block can carry, LEN
// being a 16-bit field.
const maxStored = 0xffff

const (
	// Compression method 8 (deflate) with a 32 KB window field.
	cmf = 0x78
	// Smallest FLG making (cmf*256 + flg) a multiple of 31 with the
	// preset dictionary bit unset.
	flg = (31 - cmf*256%31) % 31
)

// Writer frames bytes written to it into a zlib stream on the underlying
// writer. Close must be called to flush the final block and the trailer.
type Writer struct {
	w           io.Writer
	adler       hash.Hash32
	buf         []byte
	n           int
	wroteHeader bool
	closed      bool
	err         error
}

// NewWriter returns a Writer framing its input into a zlib stream on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		adler: adler32.New(),
		buf:   make([]byte, maxStored),
	}
}

func (z *Writer) writeHeader() error {
	if z.wroteHeader {
		return nil
	}
	z.wroteHeader = true
	_, err := z.w.Write([]byte{cmf, flg})
	return err
}

// writeBlock emits the buffered payload as one stored block. A full buffer
// is only ever flushed non-final from Write, so BFINAL always lands on the
// last block of the stream.
func (z *Writer) writeBlock(final bool) error {
	var hdr [5]byte
	if final {
		hdr[0] = 1
	}
	hdr[1] = byte(z.n)
	hdr[2] = byte(z.n >> 8)
	hdr[3] = ^hdr[1]
	hdr[4] = ^hdr[2]
	if _, err := z.w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := z.w.Write(z.buf[:z.n]); err != nil {
		return err
	}
	z.n = 0
	return nil
}

// Write buffers p into stored blocks, flushing each block only once more
// payload is known to follow it.
func (z *Writer) Write(p []byte) (int, error) {
	if z.err != nil {
		return 0, z.err
	}
	if z.err = z.writeHeader(); z.err != nil {
		return 0, z.err
	}
	z.adler.Write(p)
	var n int
	for len(p) > 0 {
		if z.n == maxStored {
			if z.err = z.writeBlock(false); z.err != nil {
				return n, z.err
			}
		}
		m := copy(z.buf[z.n:], p)
		z.n += m
		n += m
		p = p[m:]
	}
	return n, nil
}

// Close flushes any buffered payload as the final stored block and appends
// the Adler-32 trailer. A stream that never saw a write still emits the
// header, a zero-length final block, and the trailer for the empty payload.
func (z *Writer) Close() error {
	if z.closed {
		return z.err
	}
	z.closed = true
	if z.err != nil {
		return z.err
	}
	if z.err = z.writeHeader(); z.err != nil {
		return z.err
	}
	if z.err = z.writeBlock(true); z.err != nil {
		return z.err
	}
	_, z.err = z.w.Write(z.adler.Sum(nil))
	return z.err
}
