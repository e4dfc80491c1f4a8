// Package sha2 implements the SHA-224, SHA-256, SHA-384 and SHA-512
// message digests from the SHA-2 family (FIPS 180-4), each satisfying the
// standard hash.Hash interface so it composes with anything that accepts
// one (golang.org/x/crypto/pbkdf2, for instance).
package sha2

import (
	"encoding/binary"
	"hash"

	"github.com/wedkarz02/cryptoprim/src/byteutil"
	"github.com/wedkarz02/cryptoprim/src/sha2compress"
	"github.com/wedkarz02/cryptoprim/src/sha2consts"
)

type variant int

const (
	variant224 variant = iota
	variant256
	variant384
	variant512
)

const (
	blockSize32 = 64
	blockSize64 = 128

	// Size224 is the SHA-224 digest size in bytes.
	Size224 = 28
	// Size256 is the SHA-256 digest size in bytes.
	Size256 = 32
	// Size384 is the SHA-384 digest size in bytes.
	Size384 = 48
	// Size512 is the SHA-512 digest size in bytes.
	Size512 = 64
)

// Digest is a streaming SHA-2 hash. Unlike the block cipher engines in
// this module, Digest holds its own internal carry buffer: callers may
// call Write with any chunk size, including one byte at a time, and get
// the same result as a single-shot hash of the concatenated input. A
// Digest is not safe for concurrent use.
type Digest struct {
	variant variant

	h32 [8]uint32
	h64 [8]uint64

	buf    []byte
	buflen int
	length uint64 // total bytes written
}

func newDigest(v variant) *Digest {
	d := &Digest{variant: v}
	d.Reset()
	return d
}

// New224 returns a new SHA-224 Digest.
func New224() *Digest { return newDigest(variant224) }

// New256 returns a new SHA-256 Digest.
func New256() *Digest { return newDigest(variant256) }

// New384 returns a new SHA-384 Digest.
func New384() *Digest { return newDigest(variant384) }

// New512 returns a new SHA-512 Digest.
func New512() *Digest { return newDigest(variant512) }

var (
	_ hash.Hash = (*Digest)(nil)
)

func (d *Digest) is64() bool {
	return d.variant == variant384 || d.variant == variant512
}

// BlockSize returns the digest's internal block size in bytes.
func (d *Digest) BlockSize() int {
	if d.is64() {
		return blockSize64
	}
	return blockSize32
}

// Size returns the number of bytes Sum will append.
func (d *Digest) Size() int {
	switch d.variant {
	case variant224:
		return Size224
	case variant256:
		return Size256
	case variant384:
		return Size384
	default:
		return Size512
	}
}

// Reset restores the Digest to its initial state for its variant, zeroing
// the partial-block buffer it held.
func (d *Digest) Reset() {
	switch d.variant {
	case variant224:
		d.h32 = sha2consts.IV224
	case variant256:
		d.h32 = sha2consts.IV256
	case variant384:
		d.h64 = sha2consts.IV384
	case variant512:
		d.h64 = sha2consts.IV512
	}

	byteutil.SecureZero(d.buf)
	d.buf = make([]byte, d.BlockSize())
	d.buflen = 0
	d.length = 0
}

func (d *Digest) absorb(block []byte) {
	if d.is64() {
		var b [blockSize64]byte
		copy(b[:], block)
		sha2compress.Block512(&d.h64, &b)
	} else {
		var b [blockSize32]byte
		copy(b[:], block)
		sha2compress.Block256(&d.h32, &b)
	}
}

// Write absorbs p into the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	d.length += uint64(n)

	bs := d.BlockSize()

	if d.buflen > 0 {
		copied := copy(d.buf[d.buflen:bs], p)
		d.buflen += copied
		p = p[copied:]

		if d.buflen == bs {
			d.absorb(d.buf)
			d.buflen = 0
		}
	}

	for len(p) >= bs {
		d.absorb(p[:bs])
		p = p[bs:]
	}

	if len(p) > 0 {
		d.buflen = copy(d.buf, p)
	}

	return n, nil
}

// Sum appends the current digest to b and returns the resulting slice,
// without modifying the underlying hash state.
func (d *Digest) Sum(b []byte) []byte {
	clone := *d
	clone.buf = make([]byte, len(d.buf))
	copy(clone.buf, d.buf)

	clone.finalize()

	return clone.appendDigest(b)
}

// finalize applies FIPS 180-4 padding (a single 0x80 byte, zero padding,
// and a big-endian bit-length field) and absorbs the final one or two
// blocks. It mutates the receiver and must only run on a scratch clone.
func (d *Digest) finalize() {
	bs := d.BlockSize()
	lenFieldSize := 8
	if d.is64() {
		lenFieldSize = 16
	}

	tail := make([]byte, d.buflen, bs*2)
	copy(tail, d.buf[:d.buflen])
	tail = append(tail, 0x80)

	for (len(tail) % bs) != bs-lenFieldSize {
		tail = append(tail, 0x00)
	}

	bitLen := d.length * 8
	if lenFieldSize == 16 {
		tail = append(tail, make([]byte, 8)...)
		tail = binary.BigEndian.AppendUint64(tail, bitLen)
	} else {
		tail = binary.BigEndian.AppendUint64(tail, bitLen)
	}

	for len(tail) > 0 {
		d.absorb(tail[:bs])
		tail = tail[bs:]
	}
}

func (d *Digest) appendDigest(b []byte) []byte {
	if d.is64() {
		words := d.h64[:]
		nWords := d.Size() / 8
		for i := 0; i < nWords; i++ {
			b = binary.BigEndian.AppendUint64(b, words[i])
		}
		return b
	}

	words := d.h32[:]
	nWords := d.Size() / 4
	for i := 0; i < nWords; i++ {
		b = binary.BigEndian.AppendUint32(b, words[i])
	}
	return b
}

// Sum224 returns the SHA-224 digest of data.
func Sum224(data []byte) [Size224]byte {
	d := New224()
	d.Write(data)
	var out [Size224]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	d := New256()
	d.Write(data)
	var out [Size256]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum384 returns the SHA-384 digest of data.
func Sum384(data []byte) [Size384]byte {
	d := New384()
	d.Write(data)
	var out [Size384]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum512 returns the SHA-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	d := New512()
	d.Write(data)
	var out [Size512]byte
	copy(out[:], d.Sum(nil))
	return out
}
