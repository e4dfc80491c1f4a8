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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package key implements the AES key schedule for all three key lengths.
package key

import (
	"encoding/binary"
	"errors"
	"runtime"

	"github.com/wedkarz02/cryptoprim/src/byteutil"
	"github.com/wedkarz02/cryptoprim/src/consts"
	"github.com/wedkarz02/cryptoprim/src/sbox"
)

// ErrInvalidKeySize is returned when a raw key is not 16, 24 or 32 bytes.
var ErrInvalidKeySize = errors.New("key: invalid key size, want 16, 24 or 32 bytes")

// ExpandedKey is the round-key word sequence produced by ExpandKey: length
// 4*(Nr+1), Nr in {10, 12, 14}.
type ExpandedKey []uint32

func subWord(word uint32) uint32 {
	return uint32(sbox.Enc[byte(word>>24)])<<24 |
		uint32(sbox.Enc[byte(word>>16)])<<16 |
		uint32(sbox.Enc[byte(word>>8)])<<8 |
		uint32(sbox.Enc[byte(word)])
}

func rotWord(word uint32) uint32 {
	return byteutil.RotateLeft32(word, 8)
}

// ExpandKey expands keyBytes (16, 24 or 32 bytes) into the round-key word
// schedule, following FIPS-197's key expansion algorithm generalized over
// Nk in {4, 6, 8}.
func ExpandKey(keyBytes []byte) (ExpandedKey, error) {
	nk := consts.Nk(len(keyBytes))
	if nk == 0 {
		return nil, ErrInvalidKeySize
	}

	nr := consts.Nr(nk)
	total := consts.NB * (nr + 1)
	words := make(ExpandedKey, total)

	for i := 0; i < nk; i++ {
		words[i] = binary.BigEndian.Uint32(keyBytes[4*i : 4*i+4])
	}

	for i := nk; i < total; i++ {
		tmp := words[i-1]

		switch {
		case i%nk == 0:
			tmp = subWord(rotWord(tmp)) ^ (uint32(sbox.Rcon[i/nk]) << 24)
		case nk > 6 && i%nk == 4:
			tmp = subWord(tmp)
		}

		words[i] = words[i-nk] ^ tmp
	}

	return words, nil
}

// Destroy overwrites the expanded key material with zeros.
func (k ExpandedKey) Destroy() {
	for i := range k {
		k[i] = 0
	}

	runtime.KeepAlive(k)
}
