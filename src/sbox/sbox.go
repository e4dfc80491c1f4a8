// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package sbox implements the AES substitution tables used by SubBytes and
// InvSubBytes, plus the round constants used by the key schedule.
package sbox

// SBOX is a 256-entry byte-to-byte substitution table.
type SBOX [256]byte

// Enc and Dec are computed once at package init and shared read-only by
// every key schedule and block engine in this module; nothing ever
// mutates them after init runs.
var (
	Enc *SBOX
	Dec *SBOX
)

func init() {
	Enc = buildSBOX()
	Dec = buildInvSBOX(Enc)
}

// Rcon holds the AES round constants. Entry 0 is an unused placeholder;
// the key schedule indexes from 1.
var Rcon = [11]byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

func rotL8(x byte, shift byte) byte {
	return byte((x << shift) | (x >> (8 - shift)))
}

// buildSBOX constructs the standard AES S-box via the multiplicative
// inverse in GF(2^8) followed by the Rijndael affine transform.
func buildSBOX() *SBOX {
	sbox := new(SBOX)

	var p byte = 1
	var q byte = 1

	for {
		if p&0x80 != 0 {
			p = p ^ (p << 1) ^ 0x1b
		} else {
			p = p ^ (p << 1)
		}

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4

		if q&0x80 != 0 {
			q ^= 0x09
		}

		xformed := q ^ rotL8(q, 1) ^ rotL8(q, 2) ^ rotL8(q, 3) ^ rotL8(q, 4)
		sbox[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	sbox[0] = 0x63

	return sbox
}

// buildInvSBOX inverts sbox: Dec[Enc[b]] == b for every byte b.
func buildInvSBOX(sbox *SBOX) *SBOX {
	invsbox := new(SBOX)

	for i := 0; i < len(sbox); i++ {
		invsbox[sbox[i]] = byte(i)
	}

	return invsbox
}
