// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

// ChainEncrypt obfuscates buf in place with a repeating key and ciphertext
// feedback: c[n] = p[n] ^ key[n%len(key)] ^ c[n-1], c[-1] = 0. A change to
// one plaintext byte propagates to every later ciphertext byte. key must not
// be empty.
func ChainEncrypt(key, buf []byte) {
	if len(key) == 0 {
		panicInput("ChainEncrypt", "empty key")
	}

	var fb byte
	k := 0
	for n := range buf {
		buf[n] ^= key[k] ^ fb
		fb = buf[n]
		if k++; k == len(key) {
			k = 0
		}
	}
}

// ChainDecrypt inverts ChainEncrypt.
func ChainDecrypt(key, buf []byte) {
	if len(key) == 0 {
		panicInput("ChainDecrypt", "empty key")
	}

	var fb byte
	k := 0
	for n, x := range buf {
		buf[n] ^= key[k] ^ fb
		fb = x
		if k++; k == len(key) {
			k = 0
		}
	}
}

// ByteChain binds a key to ChainEncrypt and ChainDecrypt. The key is
// referenced, not copied; callers must not modify it while in use.
type ByteChain struct {
	key []byte
}

// NewByteChain returns a ByteChain for a non-empty key.
func NewByteChain(key []byte) (*ByteChain, error) {
	if len(key) == 0 {
		return nil, &KeySizeError{Cipher: "bytechain", Size: 0}
	}
	return &ByteChain{key: key}, nil
}

// Encrypt calls ChainEncrypt with the bound key.
func (c *ByteChain) Encrypt(buf []byte) {
	ChainEncrypt(c.key, buf)
}

// Decrypt calls ChainDecrypt with the bound key.
func (c *ByteChain) Decrypt(buf []byte) {
	ChainDecrypt(c.key, buf)
}
