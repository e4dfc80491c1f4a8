// Package aesctr implements CTR mode of operation on top of package aes's
// block engine, processing blocks across a bounded pool of goroutines.
package aesctr

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/wedkarz02/cryptoprim/aes"
	"github.com/wedkarz02/cryptoprim/src/consts"
	"github.com/wedkarz02/cryptoprim/src/counter"
)

// ErrSizeMismatch is returned when dst and src have different lengths.
var ErrSizeMismatch = errors.New("aesctr: dst and src must have the same length")

// IV is a 16-byte CTR nonce/counter seed: the first 8 bytes are a
// caller-chosen nonce, the last 8 bytes are the initial counter value
// (usually zero).
type IV = [consts.IV_SIZE]byte

// Encrypt XORs src with the AES-CTR keystream derived from key and iv,
// writing the result to dst. dst and src may overlap exactly (in-place)
// but otherwise must not overlap. Blocks are processed by a pool of
// workers sized to GOMAXPROCS; all workers share one Block, since
// Block.EncryptBlock only reads the expanded key.
//
// Decrypt is the same operation: CTR mode is its own inverse.
func Encrypt(key *aes.Key, iv IV, dst, src []byte) error {
	if len(dst) != len(src) {
		return ErrSizeMismatch
	}

	if len(src) == 0 {
		return nil
	}

	block, err := aes.NewBlock(key)
	if err != nil {
		return err
	}
	defer block.Destroy()

	numBlocks := (len(src) + consts.BLOCK_SIZE - 1) / consts.BLOCK_SIZE

	workers := runtime.GOMAXPROCS(0)
	if workers > numBlocks {
		workers = numBlocks
	}
	if workers < 1 {
		workers = 1
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			for {
				idx := cursor.Add(1) - 1
				if idx >= int64(numBlocks) {
					return
				}

				start := int(idx) * consts.BLOCK_SIZE
				end := start + consts.BLOCK_SIZE
				if end > len(src) {
					end = len(src)
				}

				ctrBlock := counter.ForBlock(iv, uint64(idx))
				keystream := block.EncryptBlock(ctrBlock)

				for i := start; i < end; i++ {
					dst[i] = src[i] ^ keystream[i-start]
				}
			}
		}()
	}

	wg.Wait()

	return nil
}

// Decrypt decrypts src into dst. CTR mode is its own inverse, so this is
// an alias for Encrypt.
func Decrypt(key *aes.Key, iv IV, dst, src []byte) error {
	return Encrypt(key, iv, dst, src)
}
