// Package kdf derives symmetric keys from low-entropy passphrases, for
// feeding package aes. It wraps two password-hashing schemes: PBKDF2 (with
// this module's own SHA-2 implementation as the PRF) and Argon2id.
package kdf

import (
	"crypto/rand"
	"errors"
	"hash"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	"github.com/wedkarz02/cryptoprim/sha2"
)

// ErrEmptyPassphrase is returned when a derivation is attempted with an
// empty passphrase.
var ErrEmptyPassphrase = errors.New("kdf: passphrase must not be empty")

// ErrEmptySalt is returned when a derivation is attempted with an empty
// salt.
var ErrEmptySalt = errors.New("kdf: salt must not be empty")

// DefaultSaltSize is the recommended random salt length in bytes.
const DefaultSaltSize = 16

// NewSalt draws a cryptographically random salt of n bytes.
func NewSalt(n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// PBKDF2Params configures PBKDF2-HMAC derivation.
type PBKDF2Params struct {
	// Iterations is the PBKDF2 iteration count.
	Iterations int
	// KeyLen is the derived key length in bytes (16, 24 or 32 for AES).
	KeyLen int
}

// DefaultPBKDF2Params returns NIST SP 800-132-aligned defaults for
// deriving an AES-256 key.
func DefaultPBKDF2Params() PBKDF2Params {
	return PBKDF2Params{
		Iterations: 600000,
		KeyLen:     32,
	}
}

// DeriveKeyPBKDF2 derives a key from passphrase and salt using PBKDF2 with
// this module's own SHA-256 implementation as the underlying HMAC hash.
func DeriveKeyPBKDF2(passphrase, salt []byte, params PBKDF2Params) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) == 0 {
		return nil, ErrEmptySalt
	}

	iterations := params.Iterations
	if iterations == 0 {
		iterations = DefaultPBKDF2Params().Iterations
	}

	keyLen := params.KeyLen
	if keyLen == 0 {
		keyLen = DefaultPBKDF2Params().KeyLen
	}

	newHash := func() hash.Hash { return sha2.New256() }

	return pbkdf2.Key(passphrase, salt, iterations, keyLen, newHash), nil
}

// Argon2idParams configures Argon2id derivation.
type Argon2idParams struct {
	// Time is the number of passes over memory.
	Time uint32
	// MemoryKiB is the memory cost in kibibytes.
	MemoryKiB uint32
	// Threads is the degree of parallelism.
	Threads uint8
	// KeyLen is the derived key length in bytes (16, 24 or 32 for AES).
	KeyLen uint32
}

// DefaultArgon2idParams returns OWASP-recommended defaults for deriving an
// AES-256 key.
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{
		Time:      3,
		MemoryKiB: 64 * 1024,
		Threads:   4,
		KeyLen:    32,
	}
}

// DeriveKeyArgon2id derives a key from passphrase and salt using Argon2id.
func DeriveKeyArgon2id(passphrase, salt []byte, params Argon2idParams) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) == 0 {
		return nil, ErrEmptySalt
	}

	def := DefaultArgon2idParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.MemoryKiB == 0 {
		params.MemoryKiB = def.MemoryKiB
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}
	if params.KeyLen == 0 {
		params.KeyLen = def.KeyLen
	}

	return argon2.IDKey(passphrase, salt, params.Time, params.MemoryKiB, params.Threads, params.KeyLen), nil
}
