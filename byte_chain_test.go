// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"bytes"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byteSizeName(n int) string {
	if n >= 1024 && n%1024 == 0 {
		return strconv.Itoa(n/1024) + "K"
	}
	return strconv.Itoa(n)
}

func TestChainEncryptKnownAnswer(t *testing.T) {
	key := []byte{0x12, 0x34, 0x56, 0x78}
	buf := make([]byte, 24)

	ChainEncrypt(key, buf)
	want := bytes.Repeat(mustHex(t, "122670081a2e7800"), 3)
	assert.Equal(t, want, buf)

	ChainDecrypt(key, buf)
	assert.Equal(t, make([]byte, 24), buf)
}

func TestChainRoundTrip(t *testing.T) {
	key := []byte{0x12, 0x34, 0x56, 0x78}
	buf := make([]byte, 24)
	buf[0] = 170
	buf[12] = 85
	plaintext := append([]byte{}, buf...)

	ChainEncrypt(key, buf)
	assert.NotEqual(t, plaintext, buf)
	ChainDecrypt(key, buf)
	assert.Equal(t, plaintext, buf)

	rng := rand.New(rand.NewSource(17)) //nolint:gosec
	for _, keyLen := range []int{1, 3, 16, 100} {
		key := randomBytes(t, rng, keyLen)
		plaintext := randomBytes(t, rng, 257)
		buf := append([]byte{}, plaintext...)

		ChainEncrypt(key, buf)
		ChainDecrypt(key, buf)
		assert.Equal(t, plaintext, buf, "key length %d", keyLen)
	}
}

func TestChainForwardDiffusion(t *testing.T) {
	key := []byte("obfuscate")
	plaintext := bytes.Repeat([]byte("0123456789"), 5)

	base := append([]byte{}, plaintext...)
	ChainEncrypt(key, base)

	const flipped = 20
	changed := append([]byte{}, plaintext...)
	changed[flipped] ^= 0x04
	ChainEncrypt(key, changed)

	assert.Equal(t, base[:flipped], changed[:flipped], "earlier bytes are unaffected")
	for n := flipped; n < len(base); n++ {
		assert.Equal(t, byte(0x04), base[n]^changed[n], "byte %d", n)
	}
}

func TestChainEmpty(t *testing.T) {
	ChainEncrypt([]byte{1}, nil)
	ChainDecrypt([]byte{1}, []byte{})

	buf := []byte{1, 2, 3}
	assertInvalidInput(t, func() { ChainEncrypt(nil, buf) })
	assertInvalidInput(t, func() { ChainDecrypt([]byte{}, buf) })
	assert.Equal(t, []byte{1, 2, 3}, buf)
}

func TestByteChain(t *testing.T) {
	_, err := NewByteChain(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	key := []byte{0x12, 0x34, 0x56, 0x78}
	c, err := NewByteChain(key)
	require.NoError(t, err)

	var bc BufferCipher = c
	buf := make([]byte, 24)
	want := append([]byte{}, buf...)
	ChainEncrypt(key, want)

	bc.Encrypt(buf)
	assert.Equal(t, want, buf)
	bc.Decrypt(buf)
	assert.Equal(t, make([]byte, 24), buf)
}

func BenchmarkChainEncrypt(b *testing.B) {
	key := []byte("My secret key")
	for _, size := range []int{64, 1024, 16 * 1024} {
		size := size
		b.Run(byteSizeName(size), func(b *testing.B) {
			buf := make([]byte, size)

			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ChainEncrypt(key, buf)
			}
		})
	}
}
