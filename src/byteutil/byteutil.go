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

// Package byteutil implements the small bit-twiddling primitives shared by
// the AES and SHA-2 engines: rotation, byte-order reversal, block-count
// arithmetic, and non-elidable zeroization of secret buffers.
package byteutil

import (
	"math/bits"
	"runtime"
)

// RotateLeft32 rotates x left by n bits, n taken modulo 32.
func RotateLeft32(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, n)
}

// RotateRight32 rotates x right by n bits, n taken modulo 32.
func RotateRight32(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// RotateLeft64 rotates x left by n bits, n taken modulo 64.
func RotateLeft64(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, n)
}

// RotateRight64 rotates x right by n bits, n taken modulo 64.
func RotateRight64(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}

// ByteSwap32 reverses the byte order of a 32-bit word.
func ByteSwap32(x uint32) uint32 {
	return bits.ReverseBytes32(x)
}

// ByteSwap64 reverses the byte order of a 64-bit word.
func ByteSwap64(x uint64) uint64 {
	return bits.ReverseBytes64(x)
}

// CeilDivBlocks returns ceil(size / blockSize).
func CeilDivBlocks(size, blockSize int) int {
	if size == 0 {
		return 0
	}

	return (size + blockSize - 1) / blockSize
}

// SecureZero overwrites every byte of buf with zero using a store pattern
// the compiler cannot prove dead and cannot hoist away, mirroring
// explicit_bzero. Callers MUST invoke this on every buffer that ever held
// key material, expanded key schedules, AES state, or hash state once the
// buffer's owning scope ends.
func SecureZero(buf []byte) {
	if len(buf) == 0 {
		return
	}

	for i := range buf {
		buf[i] = 0
	}

	runtime.KeepAlive(buf)
}
