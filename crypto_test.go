// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xorBytesReference(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}

func TestXorBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) //nolint:gosec
	for _, sizes := range [][3]int{
		{16, 16, 16},
		{16, 15, 16},
		{8, 16, 16},
		{33, 33, 32},
		{0, 16, 16},
	} {
		a := make([]byte, sizes[1])
		b := make([]byte, sizes[2])
		_, err := rng.Read(a)
		require.NoError(t, err)
		_, err = rng.Read(b)
		require.NoError(t, err)

		dst := make([]byte, sizes[0])
		reference := make([]byte, sizes[0])

		n := xorBytes(dst, a, b)
		assert.Equal(t, xorBytesReference(reference, a, b), n)
		assert.Equal(t, reference, dst)
	}
}

func TestXorBytesInPlace(t *testing.T) {
	buf := []byte{0x0f, 0xf0, 0xaa, 0x55}
	mask := []byte{0xff, 0xff, 0xff, 0xff}

	assert.Equal(t, 4, xorBytes(buf, buf, mask))
	assert.Equal(t, []byte{0xf0, 0x0f, 0x55, 0xaa}, buf)
}

func TestInexactOverlap(t *testing.T) {
	buf := make([]byte, 32)

	assert.False(t, inexactOverlap(buf[:16], buf[:16]))
	assert.False(t, inexactOverlap(buf[:16], buf[16:]))
	assert.False(t, inexactOverlap(buf[:0], buf[:16]))
	assert.True(t, inexactOverlap(buf[1:17], buf[:16]))
	assert.True(t, inexactOverlap(buf[:16], buf[15:31]))
	assert.False(t, inexactOverlap(buf[:16], make([]byte, 16)))
}

func TestCheckBlocks(t *testing.T) {
	checkBlocks("test", nil)
	checkBlocks("test", make([]byte, 48))
	assertInvalidInput(t, func() { checkBlocks("test", make([]byte, 47)) })
}
