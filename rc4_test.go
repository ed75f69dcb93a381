// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"bytes"
	"crypto/rc4" //nolint:staticcheck,gosec
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRC4(t testing.TB, key []byte) *RC4 {
	t.Helper()

	c, err := NewRC4(key)
	require.NoError(t, err)
	return c
}

func TestRC4KnownAnswer(t *testing.T) {
	for _, v := range []struct {
		key, plaintext, ciphertext string
	}{
		{"Key", "Plaintext", "bbf316e8d940af0ad3"},
		{"Wiki", "pedia", "1021bf0420"},
		{"Secret", "Attack at dawn", "45a01f645fc35b383552544b9bf5"},
	} {
		c := newTestRC4(t, []byte(v.key))
		buf := []byte(v.plaintext)
		c.Encrypt(buf)
		assert.Equal(t, mustHex(t, v.ciphertext), buf, v.key)

		require.NoError(t, c.Reset([]byte(v.key)))
		c.Decrypt(buf)
		assert.Equal(t, v.plaintext, string(buf), v.key)
	}
}

func TestRC4MatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(11)) //nolint:gosec

	for _, keyLen := range []int{1, 5, 16, 255, 256} {
		key := randomBytes(t, rng, keyLen)
		reference, err := rc4.NewCipher(key)
		require.NoError(t, err)
		c := newTestRC4(t, key)

		// Several calls in a row must continue one keystream.
		for _, n := range []int{0, 1, 7, 256, 1000} {
			src := randomBytes(t, rng, n)
			want := make([]byte, n)
			got := make([]byte, n)
			reference.XORKeyStream(want, src)
			c.XORKeyStream(got, src)
			require.Equal(t, want, got, "key length %d", keyLen)
		}
	}
}

func TestRC4SplitCalls(t *testing.T) {
	key := []byte("My secret key")
	data := bytes.Repeat([]byte{0x5a}, 1024)

	whole := append([]byte{}, data...)
	newTestRC4(t, key).Transform(whole)

	split := append([]byte{}, data...)
	c := newTestRC4(t, key)
	c.Transform(split[:3])
	c.Transform(split[3:500])
	c.Transform(split[500:])

	assert.Equal(t, whole, split)
}

func TestRC4Clone(t *testing.T) {
	c := newTestRC4(t, []byte("fork"))
	prefix := make([]byte, 37)
	c.Transform(prefix)

	fork := c.Clone()

	a := make([]byte, 64)
	b := make([]byte, 64)
	c.Transform(a)
	fork.Transform(b)
	assert.Equal(t, a, b, "clone continues from the same position")

	// Advancing one must not move the other.
	c.Transform(a)
	fork.Transform(make([]byte, 1))
	fork.Transform(b)
	assert.NotEqual(t, a, b)
}

func TestRC4Reset(t *testing.T) {
	key := []byte("reset me")
	c := newTestRC4(t, key)

	first := make([]byte, 32)
	c.Transform(first)
	c.Transform(make([]byte, 100))

	require.NoError(t, c.Reset(key))
	again := make([]byte, 32)
	c.Transform(again)
	assert.Equal(t, first, again)

	snapshot := *c
	assert.ErrorIs(t, c.Reset(nil), ErrInvalidInput)
	assert.Equal(t, snapshot, *c, "failed reset leaves state untouched")
}

func TestRC4RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(13)) //nolint:gosec
	key := randomBytes(t, rng, 16)
	plaintext := randomBytes(t, rng, 4096)

	buf := append([]byte{}, plaintext...)
	newTestRC4(t, key).Encrypt(buf)
	assert.NotEqual(t, plaintext, buf)

	newTestRC4(t, key).Decrypt(buf)
	assert.Equal(t, plaintext, buf)
}

func TestRC4KeySensitivity(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)
	newTestRC4(t, []byte{0x01, 0x02, 0x03}).Transform(a)
	newTestRC4(t, []byte{0x01, 0x02, 0x04}).Transform(b)
	assert.NotEqual(t, a, b)
}

func TestRC4InvalidKey(t *testing.T) {
	for _, size := range []int{0, 257, 1024} {
		_, err := NewRC4(make([]byte, size))
		assert.ErrorIs(t, err, ErrInvalidInput)

		var keyErr *KeySizeError
		if assert.ErrorAs(t, err, &keyErr) {
			assert.Equal(t, "rc4", keyErr.Cipher)
			assert.Equal(t, size, keyErr.Size)
		}
	}
}

func TestRC4InvalidBuffers(t *testing.T) {
	c := newTestRC4(t, []byte("overlap"))
	snapshot := *c

	buf := make([]byte, 32)
	assertInvalidInput(t, func() { c.XORKeyStream(buf[:4], buf[:8]) })
	assertInvalidInput(t, func() { c.XORKeyStream(buf[1:9], buf[0:8]) })
	assert.Equal(t, snapshot, *c, "rejected calls must not advance the stream")
	assert.Equal(t, make([]byte, 32), buf)

	// Empty input is a no-op even with a nil destination.
	c.XORKeyStream(nil, nil)
	assert.Equal(t, snapshot, *c)
}

func isPermutation(s *[256]byte) bool {
	var seen [256]bool
	for _, v := range s {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestRC4Permutation(t *testing.T) {
	c := newTestRC4(t, []byte("perm"))
	assert.True(t, isPermutation(&c.s))

	c.Transform(make([]byte, 10000))
	assert.True(t, isPermutation(&c.s))
}

func FuzzRC4Permutation(f *testing.F) {
	f.Add([]byte("Key"), []byte("Plaintext"))
	f.Add([]byte{0}, []byte{})
	f.Add(bytes.Repeat([]byte{0xff}, 256), make([]byte, 300))

	f.Fuzz(func(t *testing.T, key, data []byte) {
		c, err := NewRC4(key)
		if len(key) == 0 || len(key) > 256 {
			assert.ErrorIs(t, err, ErrInvalidInput)
			return
		}
		require.NoError(t, err)

		buf := append([]byte{}, data...)
		c.Transform(buf)
		if !isPermutation(&c.s) {
			t.Fatalf("state is not a permutation after %d bytes", len(data))
		}

		require.NoError(t, c.Reset(key))
		c.Transform(buf)
		assert.Equal(t, data, buf)
	})
}

func BenchmarkRC4(b *testing.B) {
	for _, size := range []int{64, 1024, 16 * 1024} {
		size := size
		b.Run(byteSizeName(size), func(b *testing.B) {
			c, err := NewRC4([]byte("My secret key"))
			if err != nil {
				b.Fatal(err)
			}
			buf := make([]byte, size)

			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Transform(buf)
			}
		})
	}
}
