// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

// Every mode below works in place on a buffer whose length is a multiple of
// BlockSize and panics with an *InputError before touching it otherwise.
// Blocks are processed strictly front to back.

// Encrypt encrypts buf block by block (ECB). Equal plaintext blocks give
// equal ciphertext blocks.
func (a *AES128) Encrypt(buf []byte) {
	checkBlocks("aes128.Encrypt", buf)

	for i := 0; i < len(buf); i += BlockSize {
		b := buf[i : i+BlockSize]
		a.encryptBlock(b, b)
	}
}

// Decrypt inverts Encrypt.
func (a *AES128) Decrypt(buf []byte) {
	checkBlocks("aes128.Decrypt", buf)
	a.checkDecrypt("aes128.Decrypt")

	for i := 0; i < len(buf); i += BlockSize {
		b := buf[i : i+BlockSize]
		a.decryptBlock(b, b)
	}
}

// CBCEncrypt encrypts buf in CBC mode with an all-zero IV.
func (a *AES128) CBCEncrypt(buf []byte) {
	checkBlocks("aes128.CBCEncrypt", buf)

	var prev [BlockSize]byte
	for i := 0; i < len(buf); i += BlockSize {
		b := buf[i : i+BlockSize]
		xorBytes(b, b, prev[:])
		a.encryptBlock(b, b)
		copy(prev[:], b)
	}
}

// CBCDecrypt inverts CBCEncrypt.
func (a *AES128) CBCDecrypt(buf []byte) {
	checkBlocks("aes128.CBCDecrypt", buf)
	a.checkDecrypt("aes128.CBCDecrypt")

	var prev, saved [BlockSize]byte
	for i := 0; i < len(buf); i += BlockSize {
		b := buf[i : i+BlockSize]
		copy(saved[:], b)
		a.decryptBlock(b, b)
		xorBytes(b, b, prev[:])
		prev = saved
	}
}

// XOREncrypt chains blocks without running the cipher:
// c[i] = p[i] ^ c[i-1], c[-1] = 0. It is a throughput baseline only.
func (a *AES128) XOREncrypt(buf []byte) {
	checkBlocks("aes128.XOREncrypt", buf)

	var prev [BlockSize]byte
	for i := 0; i < len(buf); i += BlockSize {
		b := buf[i : i+BlockSize]
		xorBytes(b, b, prev[:])
		copy(prev[:], b)
	}
}

// XORDecrypt inverts XOREncrypt: p[i] = c[i] ^ c[i-1].
func (a *AES128) XORDecrypt(buf []byte) {
	checkBlocks("aes128.XORDecrypt", buf)

	var prev, saved [BlockSize]byte
	for i := 0; i < len(buf); i += BlockSize {
		b := buf[i : i+BlockSize]
		copy(saved[:], b)
		xorBytes(b, b, prev[:])
		prev = saved
	}
}
