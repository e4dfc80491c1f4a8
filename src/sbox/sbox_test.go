package sbox

import "testing"

func TestEncDecAreInverses(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if Dec[Enc[b]] != b {
			t.Fatalf("Dec[Enc[%#x]] = %#x, want %#x", b, Dec[Enc[b]], b)
		}
	}
}

func TestKnownSBoxEntries(t *testing.T) {
	cases := map[byte]byte{
		0x00: 0x63,
		0x01: 0x7c,
		0x53: 0xed,
		0xff: 0x16,
	}

	for in, want := range cases {
		if Enc[in] != want {
			t.Errorf("Enc[%#x] = %#x, want %#x", in, Enc[in], want)
		}
	}
}
