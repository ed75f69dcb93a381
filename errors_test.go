// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInvalidInput runs fn and checks that it panics with an error that
// unwraps to ErrInvalidInput.
func assertInvalidInput(t *testing.T, fn func()) {
	t.Helper()

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "expected panic with an error, got %v", recovered)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKeySizeError(t *testing.T) {
	err := error(&KeySizeError{Cipher: "rc4", Size: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "rc4: invalid key size 0: invalid input", err.Error())
}

func TestInputError(t *testing.T) {
	err := error(&InputError{Op: "aes128.Encrypt", Reason: "buffer length 3 is not a multiple of 16"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "aes128.Encrypt: buffer length 3 is not a multiple of 16: invalid input", err.Error())
}
