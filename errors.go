// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of every contract violation reported by this
	// package, whether returned from a constructor or raised by a transform.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccelerationUnavailable is returned when the AES-NI backend is
	// requested on a host that cannot execute it.
	ErrAccelerationUnavailable = errors.New("accelerated AES backend unavailable")

	errDecryptionDisabled = errors.New("engine was built without decryption keys")
)

// KeySizeError reports a key whose length the cipher cannot accept.
type KeySizeError struct {
	Cipher string
	Size   int
}

func (e *KeySizeError) Error() string {
	return fmt.Sprintf("%s: invalid key size %d: %v", e.Cipher, e.Size, ErrInvalidInput)
}

func (e *KeySizeError) Unwrap() error {
	return ErrInvalidInput
}

// InputError is the panic value raised when a transform is called in
// violation of its contract. No byte of the buffer has been modified when
// it is raised.
type InputError struct {
	Op     string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, ErrInvalidInput)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func panicInput(op, format string, args ...interface{}) {
	panic(&InputError{Op: op, Reason: fmt.Sprintf(format, args...)})
}
