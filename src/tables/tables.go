// Package tables builds the fixed lookup tables the AES block engine needs
// at full speed: the six GF(2^8) multiply-by-constant tables used by
// MixColumns/InvMixColumns, and the four T-tables that fuse
// SubBytes+ShiftRows+MixColumns into a single 32-bit lookup per state byte.
//
// Everything here is computed once, at package init, from src/sbox and
// src/galois; nothing is ever mutated afterward.
package tables

import (
	"github.com/wedkarz02/cryptoprim/src/galois"
	"github.com/wedkarz02/cryptoprim/src/sbox"
)

// GF2, GF3, GF9, GF11, GF13 and GF14 are byte-indexed GF(2^8)
// multiply-by-constant tables, named after the constant they multiply by.
var (
	GF2  [256]byte
	GF3  [256]byte
	GF9  [256]byte
	GF11 [256]byte
	GF13 [256]byte
	GF14 [256]byte
)

// T0enc, T1enc, T2enc and T3enc are the 256-entry 32-bit encryption
// T-tables: for byte a with s = sbox.Enc[a],
//
//	T0enc[a] = GF2[s]<<24 | s<<16 | s<<8 | GF3[s]
//	T1enc[a] = GF3[s]<<24 | GF2[s]<<16 | s<<8 | s
//	T2enc[a] = s<<24 | GF3[s]<<16 | GF2[s]<<8 | s
//	T3enc[a] = s<<24 | s<<16 | GF3[s]<<8 | GF2[s]
var (
	T0enc [256]uint32
	T1enc [256]uint32
	T2enc [256]uint32
	T3enc [256]uint32
)

func init() {
	for a := 0; a < 256; a++ {
		b := byte(a)

		GF2[a] = galois.Gmul(b, 2)
		GF3[a] = galois.Gmul(b, 3)
		GF9[a] = galois.Gmul(b, 9)
		GF11[a] = galois.Gmul(b, 11)
		GF13[a] = galois.Gmul(b, 13)
		GF14[a] = galois.Gmul(b, 14)
	}

	for a := 0; a < 256; a++ {
		s := sbox.Enc[a]
		s2 := uint32(GF2[s])
		s3 := uint32(GF3[s])
		sw := uint32(s)

		T0enc[a] = s2<<24 | sw<<16 | sw<<8 | s3
		T1enc[a] = s3<<24 | s2<<16 | sw<<8 | sw
		T2enc[a] = sw<<24 | s3<<16 | s2<<8 | sw
		T3enc[a] = sw<<24 | sw<<16 | s3<<8 | s2
	}
}
