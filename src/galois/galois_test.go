package galois

import "testing"

func TestGmulKnownValues(t *testing.T) {
	cases := []struct {
		a, b, want byte
	}{
		{0x57, 0x83, 0xc1},
		{0x53, 0xca, 0x01},
		{0x01, 0x01, 0x01},
		{0x00, 0x7f, 0x00},
	}

	for _, c := range cases {
		if got := Gmul(c.a, c.b); got != c.want {
			t.Errorf("Gmul(%#x, %#x) = %#x, want %#x", c.a, c.b, got, c.want)
		}
	}
}

func TestGmulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			if Gmul(byte(a), byte(b)) != Gmul(byte(b), byte(a)) {
				t.Fatalf("Gmul(%#x, %#x) != Gmul(%#x, %#x)", a, b, b, a)
			}
		}
	}
}

func TestGadd(t *testing.T) {
	if Gadd(0x53, 0xca) != 0x53^0xca {
		t.Fatal("Gadd is not XOR")
	}
}
