package counter

import (
	"encoding/hex"
	"testing"
)

func TestForBlockMatchesSP80038A(t *testing.T) {
	raw, err := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}

	var iv [16]byte
	copy(iv[:], raw)

	want := []string{
		"f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff",
		"f0f1f2f3f4f5f6f7f8f9fafbfcfdff00",
		"f0f1f2f3f4f5f6f7f8f9fafbfcfdff01",
		"f0f1f2f3f4f5f6f7f8f9fafbfcfdff02",
	}

	for idx, w := range want {
		got := ForBlock(iv, uint64(idx))
		if hex.EncodeToString(got[:]) != w {
			t.Errorf("ForBlock(iv, %d) = %x, want %s", idx, got, w)
		}
	}
}

func TestForBlockKeepsNonceFixed(t *testing.T) {
	var iv [16]byte
	copy(iv[:8], []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11})

	want := [8]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11}

	for idx := uint64(0); idx < 5; idx++ {
		got := ForBlock(iv, idx)
		if [8]byte(got[:8]) != want {
			t.Fatalf("nonce half changed at index %d: %x", idx, got[:8])
		}
	}
}

func TestForBlockWrapsOnOverflow(t *testing.T) {
	var iv [16]byte
	for i := 8; i < 16; i++ {
		iv[i] = 0xff
	}

	got := ForBlock(iv, 1)
	want := [16]byte{}
	if hex.EncodeToString(got[:]) != hex.EncodeToString(want[:]) {
		t.Fatalf("ForBlock did not wrap: %x", got)
	}
}
