// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"github.com/pion/logging"
)

// AESOption configures an AES128 engine at construction.
type AESOption func(*aesConfig) error

type aesConfig struct {
	backend        Backend
	withDecryption bool
	loggerFactory  logging.LoggerFactory
}

func defaultAESConfig() aesConfig {
	return aesConfig{
		backend:        BackendAuto,
		withDecryption: true,
	}
}

// WithBackend selects the round-function backend. BackendAESNI fails with
// ErrAccelerationUnavailable when HasAESNI is false.
func WithBackend(b Backend) AESOption {
	return func(c *aesConfig) error {
		c.backend = b
		return nil
	}
}

// WithoutDecryption skips deriving the inverse round keys. The resulting
// engine panics whenever a decryption has to run the cipher.
func WithoutDecryption() AESOption {
	return func(c *aesConfig) error {
		c.withDecryption = false
		return nil
	}
}

// WithLoggerFactory sets the factory used for construction-time logging.
func WithLoggerFactory(f logging.LoggerFactory) AESOption {
	return func(c *aesConfig) error {
		c.loggerFactory = f
		return nil
	}
}
