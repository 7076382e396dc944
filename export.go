package pngcap

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/bodgit/pngcap/pixel"
	"github.com/bodgit/pngcap/png"
	"github.com/bodgit/pngcap/resize"
)

// Export encodes src and writes it to path. The encoded bytes are owned by
// this call; only the finished file reaches disk. When a catalog is
// attached the export is recorded, deduplicated by the SHA-1 of the
// encoded file.
func (e *Exporter) Export(path string, src pixel.Source) error {
	return e.export(path, src, 0)
}

// ExportUpscaled bilinearly resamples src to width by height before
// writing it to path.
func (e *Exporter) ExportUpscaled(path string, src pixel.Source, width, height int) error {
	dst, err := resize.Bilinear(src, width, height)
	if err != nil {
		return err
	}
	return e.export(path, dst, 0)
}

func (e *Exporter) export(path string, src pixel.Source, crc uint32) error {
	b := new(bytes.Buffer)
	if err := png.Encode(b, src); err != nil {
		return err
	}

	if err := writeFile(path, b.Bytes()); err != nil {
		return fmt.Errorf("pngcap: writing %s: %w", path, err)
	}

	if e.db != nil {
		width, height := src.Size()

		thumb, err := Thumbnail(src)
		if err != nil {
			return err
		}

		sha := fmt.Sprintf("%X", sha1.Sum(b.Bytes()))
		if _, err := e.db.Add(sha, crc, width, height, thumb); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, b []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err = f.Write(b); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
