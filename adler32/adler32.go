/*
Package adler32 implements the Adler-32 checksum used by zlib stream
trailers, defined in RFC 1950.
*/
package adler32

import "hash"

// Size of an Adler-32 checksum in bytes.
const Size = 4

// Largest prime smaller than 65536.
const mod = 65521

type digest struct {
	s1, s2 uint32
}

// New creates a new hash.Hash32 computing the Adler-32 checksum. Its Sum
// method will lay the value out in big-endian byte order.
func New() hash.Hash32 {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() {
	d.s1, d.s2 = 1, 0
}

func (d *digest) Write(p []byte) (n int, err error) {
	for _, b := range p {
		d.s1 = (d.s1 + uint32(b)) % mod
		d.s2 = (d.s2 + d.s1) % mod
	}
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.s2<<16 | d.s1 }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Checksum returns the Adler-32 checksum of data. The checksum of no data
// is 1.
func Checksum(data []byte) uint32 {
	d := new(digest)
	d.Reset()
	d.Write(data)
	return d.Sum32()
}
