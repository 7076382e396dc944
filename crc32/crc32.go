/*
Package crc32 implements the 32-bit cyclic redundancy check, or CRC-32,
checksum as used by PNG chunk trailers.

It is the standard reflected CRC-32 (ISO-HDLC) using the reversed
polynomial 0xEDB88320, implemented from scratch so the encoder carries its
own framing checksums.
*/
package crc32

import "hash"

// Size of a CRC-32 checksum in bytes.
const Size = 4

const polynomial = 0xedb88320

type table [256]uint32

func makeTable(poly uint32) *table {
	t := new(table)
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Built once at package init, immutable and shared by every encode.
var crcTable = makeTable(polynomial)

type digest struct {
	crc uint32
	tab *table
}

// New creates a new hash.Hash32 computing the CRC-32 checksum. Its Sum
// method will lay the value out in big-endian byte order.
func New() hash.Hash32 {
	return &digest{0, crcTable}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func update(crc uint32, tab *table, p []byte) uint32 {
	crc = ^crc
	for _, b := range p {
		crc = tab[byte(crc)^b] ^ crc>>8
	}
	return ^crc
}

// Update returns the result of adding the bytes in p to the crc.
func Update(crc uint32, p []byte) uint32 {
	return update(crc, crcTable, p)
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = update(d.crc, d.tab, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Checksum returns the CRC-32 checksum of data.
func Checksum(data []byte) uint32 { return Update(0, data) }
