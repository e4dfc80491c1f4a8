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

// Package aes implements the AES-128/192/256 block cipher: key handling,
// the key schedule and the single-block encrypt/decrypt engine. See
// package aesctr for the CTR mode of operation built on top of it.
package aes

import (
	"crypto/subtle"

	"github.com/wedkarz02/cryptoprim/src/byteutil"
	"github.com/wedkarz02/cryptoprim/src/consts"
	"github.com/wedkarz02/cryptoprim/src/key"
)

// Key holds raw AES key material of length 16, 24 or 32 bytes. The zero
// value is not a valid Key; construct one with NewKey.
type Key struct {
	raw []byte
}

// NewKey copies keyBytes (16, 24 or 32 bytes) into a new Key. The caller
// retains ownership of keyBytes and may destroy it independently.
func NewKey(keyBytes []byte) (*Key, error) {
	if consts.Nk(len(keyBytes)) == 0 {
		return nil, key.ErrInvalidKeySize
	}

	raw := make([]byte, len(keyBytes))
	copy(raw, keyBytes)

	return &Key{raw: raw}, nil
}

// Size returns the raw key length in bytes (16, 24 or 32).
func (k *Key) Size() int {
	return len(k.raw)
}

// Equal reports whether k and other hold the same key material, compared
// in constant time.
func (k *Key) Equal(other *Key) bool {
	if other == nil || len(k.raw) != len(other.raw) {
		return false
	}

	return subtle.ConstantTimeCompare(k.raw, other.raw) == 1
}

// Destroy overwrites the raw key material with zeros. The Key must not be
// used afterward.
func (k *Key) Destroy() {
	byteutil.SecureZero(k.raw)
}
