package adler32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tables := []struct {
		name string
		in   string
		sum  uint32
	}{
		{"empty", "", 0x00000001},
		{"wikipedia", "Wikipedia", 0x11e60398},
	}
	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.sum, Checksum([]byte(table.in)))
		})
	}
}

func TestHash(t *testing.T) {
	h := New()

	n, err := h.Write([]byte("Wiki"))
	require.Nil(t, err)
	assert.Equal(t, 4, n)

	_, err = h.Write([]byte("pedia"))
	require.Nil(t, err)

	assert.Equal(t, uint32(0x11e60398), h.Sum32())
	assert.Equal(t, []byte{0x11, 0xe6, 0x03, 0x98}, h.Sum(nil))

	h.Reset()
	assert.Equal(t, uint32(1), h.Sum32())

	assert.Equal(t, Size, h.Size())
	assert.Equal(t, 1, h.BlockSize())
}
