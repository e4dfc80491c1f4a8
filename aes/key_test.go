package aes

import "testing"

func TestNewKeyRejectsInvalidSizes(t *testing.T) {
	for _, size := range []int{0, 1, 15, 17, 20, 33} {
		if _, err := NewKey(make([]byte, size)); err == nil {
			t.Errorf("NewKey(%d bytes): expected error, got nil", size)
		}
	}
}

func TestNewKeyAcceptsValidSizes(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		k, err := NewKey(make([]byte, size))
		if err != nil {
			t.Errorf("NewKey(%d bytes): unexpected error: %v", size, err)
			continue
		}
		if k.Size() != size {
			t.Errorf("Size() = %d, want %d", k.Size(), size)
		}
	}
}

func TestKeyEqual(t *testing.T) {
	a, _ := NewKey([]byte("0123456789abcdef"))
	b, _ := NewKey([]byte("0123456789abcdef"))
	c, _ := NewKey([]byte("fedcba9876543210"))

	if !a.Equal(b) {
		t.Error("identical keys compared unequal")
	}
	if a.Equal(c) {
		t.Error("different keys compared equal")
	}
	if a.Equal(nil) {
		t.Error("key compared equal to nil")
	}
}

func TestKeyDestroy(t *testing.T) {
	k, _ := NewKey([]byte("0123456789abcdef"))
	k.Destroy()

	for i, b := range k.raw {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %02x", i, b)
		}
	}
}
