package aesctr

import (
	"bytes"
	"encoding/hex"
	"runtime"
	"testing"

	"github.com/wedkarz02/cryptoprim/aes"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

// NIST SP 800-38A F.5.1, AES-128-CTR.
func TestEncryptSP80038A(t *testing.T) {
	rawKey := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	key, err := aes.NewKey(rawKey)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	defer key.Destroy()

	var iv IV
	copy(iv[:], mustHex(t, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"))

	plain := mustHex(t, ""+
		"6bc1bee22e409f96e93d7e117393172a"+
		"ae2d8a571e03ac9c9eb76fac45af8e51"+
		"30c81c46a35ce411e5fbc1191a0a52ef"+
		"f69f2445df4f9b17ad2b417be66c3710")

	want := mustHex(t, ""+
		"874d6191b620e3261bef6864990db6ce"+
		"9806f66b7970fdff8617187bb9fffdff"+
		"5ae4df3edbd5d35e5b4f09020db03eab"+
		"1e031dda2fbe03d1792170a0f3009cee")

	got := make([]byte, len(plain))
	if err := Encrypt(key, iv, got, plain); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if !bytes.Equal(got, want) {
		t.Fatalf("Encrypt() = %x, want %x", got, want)
	}
}

func TestDecryptIsInverseOfEncrypt(t *testing.T) {
	rawKey := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	key, err := aes.NewKey(rawKey)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	defer key.Destroy()

	var iv IV
	copy(iv[:], mustHex(t, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"))

	plain := []byte("a message that spans more than one 16-byte AES block, plus some odd tail bytes!")

	cipher := make([]byte, len(plain))
	if err := Encrypt(key, iv, cipher, plain); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	recovered := make([]byte, len(plain))
	if err := Decrypt(key, iv, recovered, cipher); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(recovered, plain) {
		t.Fatalf("Decrypt(Encrypt(p)) = %q, want %q", recovered, plain)
	}
}

func TestEncryptSizeMismatch(t *testing.T) {
	key, _ := aes.NewKey(make([]byte, 16))
	defer key.Destroy()

	var iv IV
	if err := Encrypt(key, iv, make([]byte, 10), make([]byte, 11)); err != ErrSizeMismatch {
		t.Fatalf("got %v, want ErrSizeMismatch", err)
	}
}

func TestEncryptEmptyInput(t *testing.T) {
	key, _ := aes.NewKey(make([]byte, 16))
	defer key.Destroy()

	var iv IV
	if err := Encrypt(key, iv, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEncryptDeterministicAcrossWorkerCounts(t *testing.T) {
	key, _ := aes.NewKey(make([]byte, 32))
	defer key.Destroy()

	var iv IV
	copy(iv[:], mustHex(t, "000000000000000100000000000000ff"))

	plain := bytes.Repeat([]byte("0123456789abcdef"), 257) // 257 full blocks, an odd block count

	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(0))

	var reference []byte
	for i := 1; i <= 8; i++ {
		runtime.GOMAXPROCS(i)

		out := make([]byte, len(plain))
		if err := Encrypt(key, iv, out, plain); err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		if reference == nil {
			reference = out
			continue
		}

		if !bytes.Equal(out, reference) {
			t.Fatalf("GOMAXPROCS=%d diverged from GOMAXPROCS=1", i)
		}
	}
}
