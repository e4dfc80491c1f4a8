// Package sha2compress implements the SHA-2 compression function for both
// the 32-bit (SHA-224/256) and 64-bit (SHA-384/512) word sizes, per
// FIPS 180-4.
package sha2compress

import (
	"encoding/binary"

	"github.com/wedkarz02/cryptoprim/src/byteutil"
	"github.com/wedkarz02/cryptoprim/src/sha2consts"
)

func ch32(x, y, z uint32) uint32 { return (x & y) ^ (^x & z) }
func maj32(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }
func bigSigma0_32(x uint32) uint32 {
	return byteutil.RotateRight32(x, 2) ^ byteutil.RotateRight32(x, 13) ^ byteutil.RotateRight32(x, 22)
}
func bigSigma1_32(x uint32) uint32 {
	return byteutil.RotateRight32(x, 6) ^ byteutil.RotateRight32(x, 11) ^ byteutil.RotateRight32(x, 25)
}
func smallSigma0_32(x uint32) uint32 {
	return byteutil.RotateRight32(x, 7) ^ byteutil.RotateRight32(x, 18) ^ (x >> 3)
}
func smallSigma1_32(x uint32) uint32 {
	return byteutil.RotateRight32(x, 17) ^ byteutil.RotateRight32(x, 19) ^ (x >> 10)
}

// Block256 absorbs one 64-byte block into state, as used by SHA-224/256.
func Block256(state *[8]uint32, block *[64]byte) {
	var w [64]uint32

	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint32(block[4*t : 4*t+4])
	}

	for t := 16; t < 64; t++ {
		w[t] = smallSigma1_32(w[t-2]) + w[t-7] + smallSigma0_32(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		t1 := h + bigSigma1_32(e) + ch32(e, f, g) + sha2consts.K256[t] + w[t]
		t2 := bigSigma0_32(a) + maj32(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

func ch64(x, y, z uint64) uint64 { return (x & y) ^ (^x & z) }
func maj64(x, y, z uint64) uint64 { return (x & y) ^ (x & z) ^ (y & z) }
func bigSigma0_64(x uint64) uint64 {
	return byteutil.RotateRight64(x, 28) ^ byteutil.RotateRight64(x, 34) ^ byteutil.RotateRight64(x, 39)
}
func bigSigma1_64(x uint64) uint64 {
	return byteutil.RotateRight64(x, 14) ^ byteutil.RotateRight64(x, 18) ^ byteutil.RotateRight64(x, 41)
}
func smallSigma0_64(x uint64) uint64 {
	return byteutil.RotateRight64(x, 1) ^ byteutil.RotateRight64(x, 8) ^ (x >> 7)
}
func smallSigma1_64(x uint64) uint64 {
	return byteutil.RotateRight64(x, 19) ^ byteutil.RotateRight64(x, 61) ^ (x >> 6)
}

// Block512 absorbs one 128-byte block into state, as used by SHA-384/512.
func Block512(state *[8]uint64, block *[128]byte) {
	var w [80]uint64

	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint64(block[8*t : 8*t+8])
	}

	for t := 16; t < 80; t++ {
		w[t] = smallSigma1_64(w[t-2]) + w[t-7] + smallSigma0_64(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < 80; t++ {
		t1 := h + bigSigma1_64(e) + ch64(e, f, g) + sha2consts.K512[t] + w[t]
		t2 := bigSigma0_64(a) + maj64(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
