// Package counter builds the per-block counter value used by CTR mode.
package counter

import (
	"encoding/binary"

	"github.com/wedkarz02/cryptoprim/src/consts"
)

// ForBlock returns the 16-byte counter block for the given block index: the
// high 8 bytes of iv are carried unchanged as the nonce, the low 8 bytes are
// interpreted as a big-endian integer and incremented by index, wrapping on
// overflow.
func ForBlock(iv [consts.IV_SIZE]byte, index uint64) [consts.IV_SIZE]byte {
	var out [consts.IV_SIZE]byte
	copy(out[:8], iv[:8])

	low := binary.BigEndian.Uint64(iv[8:16]) + index
	binary.BigEndian.PutUint64(out[8:16], low)

	return out
}
