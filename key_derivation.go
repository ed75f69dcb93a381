// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"fmt"
	"io"

	"github.com/pion/cipherkit/internal/keystream"
)

// DeriveKey returns the first n bytes of the RC4 keystream keyed with secret.
// It only stretches secret into key bytes of the right length for the other
// primitives; it is not a password hash.
func DeriveKey(secret []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("derive key: negative length %d: %w", n, ErrInvalidInput)
	}

	rc4, err := NewRC4(secret)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	key := make([]byte, n)
	if _, err := io.ReadFull(keystream.New(rc4), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}
