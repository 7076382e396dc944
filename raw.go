package pngcap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/pngcap/pixel"
)

// Extension is the expected filename extension of a raw capture dump.
const Extension = ".argb"

var dumpMagic = [4]byte{'A', 'R', 'G', 'B'}

const maxDumpPixels = 1 << 24

type dumpHeader struct {
	Magic  [4]byte
	Width  uint32
	Height uint32
}

// Dump is a raw capture frame as written by the overlay: a little-endian
// header carrying the magic and dimensions followed by width*height packed
// 0xAARRGGBB words. It implements the encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler interfaces.
type Dump struct {
	pixel.ARGB
}

// MarshalBinary encodes the dump into binary form and returns the result.
func (d *Dump) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	if err := d.write(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalBinary decodes the dump from binary form.
func (d *Dump) UnmarshalBinary(b []byte) error {
	return d.read(bytes.NewReader(b))
}

func (d *Dump) write(w io.Writer) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("pngcap: invalid dump size %dx%d", d.Width, d.Height)
	}
	if len(d.Pix) < d.Width*d.Height {
		return errors.New("pngcap: not enough pixel data")
	}

	hdr := dumpHeader{
		Magic:  dumpMagic,
		Width:  uint32(d.Width),
		Height: uint32(d.Height),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, d.Pix[:d.Width*d.Height])
}

func (d *Dump) read(r io.Reader) error {
	var hdr dumpHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.New("pngcap: truncated dump header")
		}
		return err
	}
	if hdr.Magic != dumpMagic {
		return errors.New("pngcap: bad dump magic")
	}
	if hdr.Width == 0 || hdr.Height == 0 || uint64(hdr.Width)*uint64(hdr.Height) > maxDumpPixels {
		return fmt.Errorf("pngcap: invalid dump size %dx%d", hdr.Width, hdr.Height)
	}

	d.Width = int(hdr.Width)
	d.Height = int(hdr.Height)
	d.Pix = make([]uint32, d.Width*d.Height)
	if err := binary.Read(r, binary.LittleEndian, d.Pix); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.New("pngcap: not enough pixel data")
		}
		return err
	}
	return nil
}

// ReadDump reads a raw capture dump from r.
func ReadDump(r io.Reader) (*Dump, error) {
	d := new(Dump)
	if err := d.read(r); err != nil {
		return nil, err
	}
	return d, nil
}

// WriteDump writes the raw capture dump d to w.
func WriteDump(w io.Writer, d *Dump) error {
	return d.write(w)
}
