package aes

import (
	"encoding/hex"
	"testing"
)

func mustKey(t *testing.T, hexKey string) *Key {
	t.Helper()
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		t.Fatalf("bad hex key: %v", err)
	}
	k, err := NewKey(raw)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	return k
}

func mustBlock(t *testing.T, hexBlock string) [BlockSize]byte {
	t.Helper()
	raw, err := hex.DecodeString(hexBlock)
	if err != nil {
		t.Fatalf("bad hex block: %v", err)
	}
	if len(raw) != BlockSize {
		t.Fatalf("block must be %d bytes, got %d", BlockSize, len(raw))
	}
	var b [BlockSize]byte
	copy(b[:], raw)
	return b
}

// FIPS-197 Appendix C single-block vectors.
func TestEncryptBlockFIPS197(t *testing.T) {
	plain := mustBlock(t, "00112233445566778899aabbccddeeff")

	cases := []struct {
		name   string
		key    string
		cipher string
	}{
		{"aes128", "000102030405060708090a0b0c0d0e0f", "69c4e0d86a7b0430d8cdb78070b4c55a"},
		{"aes192", "000102030405060708090a0b0c0d0e0f1011121314151617", "dda97ca4864cdfe06eaf70a0ec0d7191"},
		{"aes256", "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "8ea2b7ca516745bfeafc49904b496089"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			key := mustKey(t, c.key)
			block, err := NewBlock(key)
			if err != nil {
				t.Fatalf("NewBlock: %v", err)
			}
			defer block.Destroy()

			got := block.EncryptBlock(plain)
			want := mustBlock(t, c.cipher)

			if got != want {
				t.Fatalf("EncryptBlock() = %x, want %x", got, want)
			}
		})
	}
}

func TestDecryptBlockIsInverseOfEncrypt(t *testing.T) {
	keys := []string{
		"000102030405060708090a0b0c0d0e0f",
		"000102030405060708090a0b0c0d0e0f1011121314151617",
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
	}

	plain := mustBlock(t, "00112233445566778899aabbccddeeff")

	for _, hexKey := range keys {
		key := mustKey(t, hexKey)
		block, err := NewBlock(key)
		if err != nil {
			t.Fatalf("NewBlock: %v", err)
		}

		cipher := block.EncryptBlock(plain)
		got := block.DecryptBlock(cipher)

		if got != plain {
			t.Fatalf("DecryptBlock(EncryptBlock(p)) = %x, want %x", got, plain)
		}

		block.Destroy()
	}
}

func TestDecryptBlockFIPS197(t *testing.T) {
	cipher := mustBlock(t, "69c4e0d86a7b0430d8cdb78070b4c55a")
	key := mustKey(t, "000102030405060708090a0b0c0d0e0f")

	block, err := NewBlock(key)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	defer block.Destroy()

	got := block.DecryptBlock(cipher)
	want := mustBlock(t, "00112233445566778899aabbccddeeff")

	if got != want {
		t.Fatalf("DecryptBlock() = %x, want %x", got, want)
	}
}

func TestNewBlockRejectsBadKeySize(t *testing.T) {
	k := &Key{raw: make([]byte, 20)}
	if _, err := NewBlock(k); err == nil {
		t.Fatal("expected error for invalid key size")
	}
}
