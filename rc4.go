// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"crypto/cipher"
)

// RC4 is an RC4 keystream generator. Encryption and decryption are the same
// operation. An RC4 is not safe for concurrent use; use Clone to give each
// goroutine its own stream.
type RC4 struct {
	s    [256]byte
	i, j uint8
}

var _ cipher.Stream = (*RC4)(nil)

// NewRC4 returns an RC4 keyed with key, which must be 1 to 256 bytes long.
func NewRC4(key []byte) (*RC4, error) {
	c := &RC4{}
	if err := c.Reset(key); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset re-keys the generator and restarts its keystream. On error the
// state is left untouched.
func (c *RC4) Reset(key []byte) error {
	k := len(key)
	if k < 1 || k > 256 {
		return &KeySizeError{Cipher: "rc4", Size: k}
	}

	for i := range c.s {
		c.s[i] = uint8(i)
	}
	var j uint8
	for i := 0; i < 256; i++ {
		j += c.s[i] + key[i%k]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}
	c.i, c.j = 0, 0
	return nil
}

// Clone returns an independent copy that continues the keystream from the
// current position.
func (c *RC4) Clone() *RC4 {
	clone := *c
	return &clone
}

// Transform XORs buf with the next len(buf) keystream bytes in place.
func (c *RC4) Transform(buf []byte) {
	c.XORKeyStream(buf, buf)
}

// Encrypt is Transform.
func (c *RC4) Encrypt(buf []byte) {
	c.Transform(buf)
}

// Decrypt is Transform.
func (c *RC4) Decrypt(buf []byte) {
	c.Transform(buf)
}

// XORKeyStream sets dst to src XORed with the keystream. dst and src must
// overlap entirely or not at all.
func (c *RC4) XORKeyStream(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	if len(dst) < len(src) {
		panicInput("rc4.XORKeyStream", "output smaller than input")
	}
	if inexactOverlap(dst[:len(src)], src) {
		panicInput("rc4.XORKeyStream", "invalid buffer overlap")
	}

	i, j := c.i, c.j
	dst = dst[:len(src)]
	for k, v := range src {
		i++
		x := c.s[i]
		j += x
		y := c.s[j]
		c.s[i], c.s[j] = y, x
		dst[k] = v ^ c.s[x+y]
	}
	c.i, c.j = i, j
}
