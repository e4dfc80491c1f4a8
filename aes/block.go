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

package aes

import (
	"encoding/binary"
	"runtime"

	"github.com/wedkarz02/cryptoprim/src/consts"
	"github.com/wedkarz02/cryptoprim/src/key"
	"github.com/wedkarz02/cryptoprim/src/sbox"
	"github.com/wedkarz02/cryptoprim/src/tables"
)

// BlockSize is the AES block size in bytes.
const BlockSize = consts.BLOCK_SIZE

// Block is an AES block cipher instance with its key schedule already
// expanded. A Block is safe for concurrent use by multiple readers (the
// expanded key is never mutated after NewBlock returns).
type Block struct {
	expandedKey key.ExpandedKey
	rounds      int
}

// NewBlock expands key's schedule and returns a ready-to-use Block.
func NewBlock(k *Key) (*Block, error) {
	expanded, err := key.ExpandKey(k.raw)
	if err != nil {
		return nil, err
	}

	nk := consts.Nk(k.Size())

	return &Block{
		expandedKey: expanded,
		rounds:      consts.Nr(nk),
	}, nil
}

// Destroy overwrites the expanded key schedule with zeros. The Block must
// not be used afterward.
func (b *Block) Destroy() {
	b.expandedKey.Destroy()
}

func byte3(w uint32) byte { return byte(w >> 24) }
func byte2(w uint32) byte { return byte(w >> 16) }
func byte1(w uint32) byte { return byte(w >> 8) }
func byte0(w uint32) byte { return byte(w) }

// EncryptBlock encrypts one 16-byte block using the T-table fast path:
// SubBytes+ShiftRows+MixColumns are fused into four 256-entry, 32-bit
// tables, one lookup per state byte (sixteen per round).
func (b *Block) EncryptBlock(plain [BlockSize]byte) [BlockSize]byte {
	s0 := binary.BigEndian.Uint32(plain[0:4])
	s1 := binary.BigEndian.Uint32(plain[4:8])
	s2 := binary.BigEndian.Uint32(plain[8:12])
	s3 := binary.BigEndian.Uint32(plain[12:16])

	rk := b.expandedKey

	s0 ^= rk[0]
	s1 ^= rk[1]
	s2 ^= rk[2]
	s3 ^= rk[3]

	var t0, t1, t2, t3 uint32

	for round := 1; round < b.rounds; round++ {
		k := 4 * round

		t0 = tables.T0enc[byte3(s0)] ^ tables.T1enc[byte2(s1)] ^ tables.T2enc[byte1(s2)] ^ tables.T3enc[byte0(s3)] ^ rk[k+0]
		t1 = tables.T0enc[byte3(s1)] ^ tables.T1enc[byte2(s2)] ^ tables.T2enc[byte1(s3)] ^ tables.T3enc[byte0(s0)] ^ rk[k+1]
		t2 = tables.T0enc[byte3(s2)] ^ tables.T1enc[byte2(s3)] ^ tables.T2enc[byte1(s0)] ^ tables.T3enc[byte0(s1)] ^ rk[k+2]
		t3 = tables.T0enc[byte3(s3)] ^ tables.T1enc[byte2(s0)] ^ tables.T2enc[byte1(s1)] ^ tables.T3enc[byte0(s2)] ^ rk[k+3]

		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	k := 4 * b.rounds

	r0 := uint32(sbox.Enc[byte3(s0)])<<24 | uint32(sbox.Enc[byte2(s1)])<<16 | uint32(sbox.Enc[byte1(s2)])<<8 | uint32(sbox.Enc[byte0(s3)])
	r1 := uint32(sbox.Enc[byte3(s1)])<<24 | uint32(sbox.Enc[byte2(s2)])<<16 | uint32(sbox.Enc[byte1(s3)])<<8 | uint32(sbox.Enc[byte0(s0)])
	r2 := uint32(sbox.Enc[byte3(s2)])<<24 | uint32(sbox.Enc[byte2(s3)])<<16 | uint32(sbox.Enc[byte1(s0)])<<8 | uint32(sbox.Enc[byte0(s1)])
	r3 := uint32(sbox.Enc[byte3(s3)])<<24 | uint32(sbox.Enc[byte2(s0)])<<16 | uint32(sbox.Enc[byte1(s1)])<<8 | uint32(sbox.Enc[byte0(s2)])

	r0 ^= rk[k+0]
	r1 ^= rk[k+1]
	r2 ^= rk[k+2]
	r3 ^= rk[k+3]

	var cipher [BlockSize]byte
	binary.BigEndian.PutUint32(cipher[0:4], r0)
	binary.BigEndian.PutUint32(cipher[4:8], r1)
	binary.BigEndian.PutUint32(cipher[8:12], r2)
	binary.BigEndian.PutUint32(cipher[12:16], r3)

	return cipher
}

// state is the 4x4 column-major byte matrix used by the decrypt path:
// state[column][row].
type state [4][4]byte

func loadState(block [BlockSize]byte) state {
	var s state
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			s[col][row] = block[4*col+row]
		}
	}
	return s
}

func (s state) store() [BlockSize]byte {
	var out [BlockSize]byte
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[4*col+row] = s[col][row]
		}
	}
	return out
}

func (b *Block) addRoundKey(s *state, round int) {
	for col := 0; col < 4; col++ {
		rk := b.expandedKey[round*4+col]
		s[col][0] ^= byte(rk >> 24)
		s[col][1] ^= byte(rk >> 16)
		s[col][2] ^= byte(rk >> 8)
		s[col][3] ^= byte(rk)
	}
}

// invShiftRows cyclically shifts row i right by i positions across the
// four columns; row 0 is unchanged.
func invShiftRows(s *state) {
	var out state
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col][row] = s[(col-row+4)%4][row]
		}
	}
	*s = out
}

func invSubBytes(s *state) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			s[col][row] = sbox.Dec[s[col][row]]
		}
	}
}

func invMixColumns(s *state) {
	for col := 0; col < 4; col++ {
		c0, c1, c2, c3 := s[col][0], s[col][1], s[col][2], s[col][3]

		s[col][0] = tables.GF14[c0] ^ tables.GF11[c1] ^ tables.GF13[c2] ^ tables.GF9[c3]
		s[col][1] = tables.GF9[c0] ^ tables.GF14[c1] ^ tables.GF11[c2] ^ tables.GF13[c3]
		s[col][2] = tables.GF13[c0] ^ tables.GF9[c1] ^ tables.GF14[c2] ^ tables.GF11[c3]
		s[col][3] = tables.GF11[c0] ^ tables.GF13[c1] ^ tables.GF9[c2] ^ tables.GF14[c3]
	}
}

// DecryptBlock decrypts one 16-byte block via the state-array path:
// InvShiftRows, InvSubBytes, AddRoundKey, InvMixColumns per round.
func (b *Block) DecryptBlock(cipher [BlockSize]byte) [BlockSize]byte {
	s := loadState(cipher)

	b.addRoundKey(&s, b.rounds)

	for round := b.rounds - 1; round > 0; round-- {
		invShiftRows(&s)
		invSubBytes(&s)
		b.addRoundKey(&s, round)
		invMixColumns(&s)
	}

	invShiftRows(&s)
	invSubBytes(&s)
	b.addRoundKey(&s, 0)

	plain := s.store()
	s.zero()

	return plain
}

// zero overwrites the state's bytes with a store pattern the compiler cannot
// prove dead, mirroring byteutil.SecureZero for this non-slice scratch type.
func (s *state) zero() {
	for col := range s {
		for row := range s[col] {
			s[col][row] = 0
		}
	}

	runtime.KeepAlive(s)
}
