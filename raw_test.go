package pngcap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/pngcap/pixel"
)

func testDump() *Dump {
	return &Dump{
		ARGB: pixel.ARGB{
			Pix:    []uint32{0x80102030, 0xff405060, 0x01708090, 0xffa0b0c0, 0x11223344, 0x55667788},
			Width:  3,
			Height: 2,
		},
	}
}

func TestDumpRoundTrip(t *testing.T) {
	in := testDump()

	b, err := in.MarshalBinary()
	require.Nil(t, err)
	assert.Equal(t, 12+len(in.Pix)*4, len(b))

	var out Dump
	require.Nil(t, out.UnmarshalBinary(b))
	assert.Equal(t, in.Width, out.Width)
	assert.Equal(t, in.Height, out.Height)
	assert.Equal(t, in.Pix, out.Pix)
}

func TestReadWriteDump(t *testing.T) {
	in := testDump()

	b := new(bytes.Buffer)
	require.Nil(t, WriteDump(b, in))

	out, err := ReadDump(b)
	require.Nil(t, err)
	assert.Equal(t, in.Pix, out.Pix)
}

func TestReadDumpErrors(t *testing.T) {
	good, err := testDump().MarshalBinary()
	require.Nil(t, err)

	tables := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"short header", good[:8]},
		{"bad magic", append([]byte("PNG\x00"), good[4:]...)},
		{"truncated pixels", good[:len(good)-4]},
		{"zero width", append([]byte{'A', 'R', 'G', 'B', 0, 0, 0, 0}, good[8:]...)},
	}
	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := ReadDump(bytes.NewReader(table.in))
			assert.NotNil(t, err)
		})
	}
}

func TestWriteDumpErrors(t *testing.T) {
	b := new(bytes.Buffer)

	assert.NotNil(t, WriteDump(b, &Dump{}))

	short := testDump()
	short.Pix = short.Pix[:2]
	assert.NotNil(t, WriteDump(b, short))
}
