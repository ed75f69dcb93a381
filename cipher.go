// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package cipherkit implements three small symmetric primitives that share
// one contract: key them once, then transform caller-owned buffers in place.
//
//   - AES128: AES-128 with an explicit round-key schedule, ECB, CBC (zero IV)
//     and an XOR-chain baseline mode. Rounds run on AES-NI when HasAESNI
//     reports support, otherwise on a table-driven software backend.
//   - RC4: the permutation-based stream cipher.
//   - ByteChain: a single-byte XOR chain with ciphertext feedback.
//
// None of these provide integrity and RC4 and the byte chain are not secure
// ciphers. They exist for throughput comparison and light obfuscation.
package cipherkit

// BufferCipher transforms a caller-owned buffer in place.
type BufferCipher interface {
	Encrypt(buf []byte)
	Decrypt(buf []byte)
}

var (
	_ BufferCipher = (*AES128)(nil)
	_ BufferCipher = (*RC4)(nil)
	_ BufferCipher = (*ByteChain)(nil)
)
