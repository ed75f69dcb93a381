// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import "math/bits"

// AES arithmetic is over GF(2^8) modulo x^8 + x^4 + x^3 + x + 1. The state is
// the 16-byte block in column-major order: byte 4*c+r is row r of column c.

// xtime multiplies b by x in GF(2^8).
func xtime(b byte) byte {
	return b<<1 ^ (b>>7)*0x1b
}

// mul multiplies b and c in GF(2^8).
func mul(b, c byte) byte {
	var s byte
	for c != 0 {
		if c&1 != 0 {
			s ^= b
		}
		b = xtime(b)
		c >>= 1
	}
	return s
}

var sbox, invSbox = newSBoxes()

// Lookup tables for the InvMixColumns coefficients.
var mul9, mulB, mulD, mulE = newInvMixTables()

// newSBoxes walks the multiplicative group with generator 3 so that q is
// always the inverse of p, then applies the affine transform.
func newSBoxes() (s, inv [256]byte) {
	var p, q uint8 = 1, 1
	for {
		// p *= 3
		if p&0x80 != 0 {
			p ^= (p << 1) ^ 0x1b
		} else {
			p ^= p << 1
		}

		// q /= 3
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		x := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		s[p] = x ^ 0x63

		if p == 1 {
			break
		}
	}

	// 0 has no inverse
	s[0] = 0x63

	for i := range s {
		inv[s[i]] = byte(i)
	}
	return s, inv
}

func newInvMixTables() (m9, mb, md, me [256]byte) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		m9[i] = mul(b, 0x09)
		mb[i] = mul(b, 0x0b)
		md[i] = mul(b, 0x0d)
		me[i] = mul(b, 0x0e)
	}
	return
}

func addRoundKey(s, k *[BlockSize]byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}

func subBytes(s *[BlockSize]byte) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func invSubBytes(s *[BlockSize]byte) {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r columns.
func shiftRows(s *[BlockSize]byte) {
	t := *s
	for c := 0; c < 4; c++ {
		for r := 1; r < 4; r++ {
			s[4*c+r] = t[4*((c+r)&3)+r]
		}
	}
}

func invShiftRows(s *[BlockSize]byte) {
	t := *s
	for c := 0; c < 4; c++ {
		for r := 1; r < 4; r++ {
			s[4*((c+r)&3)+r] = t[4*c+r]
		}
	}
}

func mixColumns(s *[BlockSize]byte) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		s[c] = a0 ^ t ^ xtime(a0^a1)
		s[c+1] = a1 ^ t ^ xtime(a1^a2)
		s[c+2] = a2 ^ t ^ xtime(a2^a3)
		s[c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}

func invMixColumns(s *[BlockSize]byte) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = mulE[a0] ^ mulB[a1] ^ mulD[a2] ^ mul9[a3]
		s[c+1] = mul9[a0] ^ mulE[a1] ^ mulB[a2] ^ mulD[a3]
		s[c+2] = mulD[a0] ^ mul9[a1] ^ mulE[a2] ^ mulB[a3]
		s[c+3] = mulB[a0] ^ mulD[a1] ^ mul9[a2] ^ mulE[a3]
	}
}

// encryptBlockGeneric mirrors the AESENC/AESENCLAST sequence in software.
func encryptBlockGeneric(enc *[roundKeys][BlockSize]byte, dst, src []byte) {
	var s [BlockSize]byte
	copy(s[:], src[:BlockSize])

	addRoundKey(&s, &enc[0])
	for r := 1; r < rounds; r++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, &enc[r])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, &enc[rounds])

	copy(dst[:BlockSize], s[:])
}

// decryptBlockGeneric mirrors the AESDEC/AESDECLAST sequence in software. The
// middle rounds consume the equivalent inverse keys in storage order.
func decryptBlockGeneric(enc *[roundKeys][BlockSize]byte, dec *[inverseKeys][BlockSize]byte, dst, src []byte) {
	var s [BlockSize]byte
	copy(s[:], src[:BlockSize])

	addRoundKey(&s, &enc[rounds])
	for r := 0; r < inverseKeys; r++ {
		invShiftRows(&s)
		invSubBytes(&s)
		invMixColumns(&s)
		addRoundKey(&s, &dec[r])
	}
	invShiftRows(&s)
	invSubBytes(&s)
	addRoundKey(&s, &enc[0])

	copy(dst[:BlockSize], s[:])
}
