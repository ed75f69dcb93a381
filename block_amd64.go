// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build amd64 && !purego

package cipherkit

// encryptBlockAsm runs AESENC over the schedule in xk.
//
//go:noescape
func encryptBlockAsm(xk *[roundKeys][BlockSize]byte, dst, src *byte)

// decryptBlockAsm runs AESDEC over the equivalent inverse keys in dk and
// finishes with AESDECLAST on xk[0].
//
//go:noescape
func decryptBlockAsm(xk *[roundKeys][BlockSize]byte, dk *[inverseKeys][BlockSize]byte, dst, src *byte)

func encryptBlockAccel(enc *[roundKeys][BlockSize]byte, dst, src []byte) {
	_, _ = dst[BlockSize-1], src[BlockSize-1]
	encryptBlockAsm(enc, &dst[0], &src[0])
}

func decryptBlockAccel(enc *[roundKeys][BlockSize]byte, dec *[inverseKeys][BlockSize]byte, dst, src []byte) {
	_, _ = dst[BlockSize-1], src[BlockSize-1]
	decryptBlockAsm(enc, dec, &dst[0], &src[0])
}
