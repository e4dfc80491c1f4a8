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

// Package consts defines constant values shared by the AES implementation.
package consts

const (
	// Size of the AES block in bytes, independent of key length.
	BLOCK_SIZE = 16

	// Size of a key schedule word in bytes.
	WORD_SIZE = 4

	// Number of words in a block / round key.
	NB = 4

	// Size of the initializing vector used by CTR mode.
	IV_SIZE = 16

	// AES-128/192/256 raw key sizes in bytes.
	KEY_SIZE_128 = 16
	KEY_SIZE_192 = 24
	KEY_SIZE_256 = 32
)

// Nk returns the key length in 32-bit words (4, 6 or 8) for a raw key of
// keySize bytes, or 0 if keySize is not one of the three AES key sizes.
func Nk(keySize int) int {
	switch keySize {
	case KEY_SIZE_128:
		return 4
	case KEY_SIZE_192:
		return 6
	case KEY_SIZE_256:
		return 8
	default:
		return 0
	}
}

// Nr returns the number of AES rounds (10, 12 or 14) for the given Nk.
func Nr(nk int) int {
	return nk + 6
}

// ExpKeySize returns the size in bytes of the expanded key schedule for
// the given Nk.
func ExpKeySize(nk int) int {
	return BLOCK_SIZE * (Nr(nk) + 1)
}
