// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !amd64 || purego

package cipherkit

// HasAESNI is always false here, so an engine never selects BackendAESNI and
// these are unreachable.

func encryptBlockAccel(*[roundKeys][BlockSize]byte, []byte, []byte) {
	panic("cipherkit: AES-NI backend not compiled in")
}

func decryptBlockAccel(*[roundKeys][BlockSize]byte, *[inverseKeys][BlockSize]byte, []byte, []byte) {
	panic("cipherkit: AES-NI backend not compiled in")
}
