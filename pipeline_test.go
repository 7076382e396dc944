package pngcap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/pngcap/pixel"
)

func writeTestDump(t *testing.T, path string, fill uint32) {
	d := &Dump{
		ARGB: pixel.ARGB{
			Pix:    make([]uint32, 16),
			Width:  4,
			Height: 4,
		},
	}
	for i := range d.Pix {
		d.Pix[i] = fill + uint32(i)
	}

	b, err := d.MarshalBinary()
	require.Nil(t, err)
	require.Nil(t, os.WriteFile(path, b, 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.Nil(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0o755))

	writeTestDump(t, filepath.Join(dir, "one.argb"), 0xff000000)
	writeTestDump(t, filepath.Join(dir, "sub", "two.ARGB"), 0xff100000)
	writeTestDump(t, filepath.Join(dir, ".hidden", "three.argb"), 0xff200000)
	require.Nil(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a dump"), 0o644))

	// A corrupt dump is logged and skipped, not fatal.
	require.Nil(t, os.WriteFile(filepath.Join(dir, "bad.argb"), []byte("ARGB"), 0o644))

	db := testDB(t)
	e := New(db, discard())

	require.Nil(t, e.Scan(dir))

	for _, f := range []string{
		filepath.Join(dir, "one.png"),
		filepath.Join(dir, "sub", "two.png"),
	} {
		w, h, _ := decodeFile(t, f)
		assert.Equal(t, 4, w)
		assert.Equal(t, 4, h)
	}

	_, err := os.Stat(filepath.Join(dir, ".hidden", "three.png"))
	assert.True(t, os.IsNotExist(err), "hidden directories must be skipped")
	_, err = os.Stat(filepath.Join(dir, "bad.png"))
	assert.True(t, os.IsNotExist(err), "corrupt dumps must not produce output")

	// A second scan finds everything already catalogued.
	require.Nil(t, e.Scan(dir))
}

func TestScanMissingDirectory(t *testing.T) {
	e := New(nil, discard())
	assert.NotNil(t, e.Scan(filepath.Join(t.TempDir(), "missing")))
}
