// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package config holds the settings of the cryptspeed benchmark driver.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pion/logging"

	"github.com/pion/cipherkit"
)

const (
	// DefaultSize is the default message size in bytes.
	DefaultSize = 4096
	// DefaultCount is the default number of messages per case.
	DefaultCount = 50000
	// DefaultSeed initializes the data filler.
	DefaultSeed = 12345
	// DefaultSecret is stretched into the keys of every case.
	DefaultSecret = "My secret key"
)

// Config is populated from flags and CRYPTSPEED_* environment variables.
type Config struct {
	Cases    []string `validate:"min=1,dive,oneof=xorchain rc4 aes128 aes128-cbc chacha20"`
	Size     int      `validate:"min=1"`
	Count    int      `validate:"min=1"`
	Parallel int      `validate:"min=1,max=1024"`
	Seed     uint32
	Secret   string `validate:"required"`
	Backend  string `validate:"omitempty,oneof=auto software aesni"`
	LogLevel string `mapstructure:"log-level" validate:"omitempty,oneof=disabled error warn info debug trace"`
}

// Validate checks the configuration against the struct tags and the block
// size of the AES cases.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	for _, name := range c.Cases {
		if strings.HasPrefix(name, "aes128") && c.Size%cipherkit.BlockSize != 0 {
			return fmt.Errorf("case %s: size %d is not a multiple of %d: %w",
				name, c.Size, cipherkit.BlockSize, cipherkit.ErrInvalidInput)
		}
	}

	if _, err := cipherkit.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("invalid backend: %w", err)
	}

	return nil
}

// AESBackend returns the configured backend. Validate must have succeeded.
func (c Config) AESBackend() cipherkit.Backend {
	b, err := cipherkit.ParseBackend(c.Backend)
	if err != nil {
		return cipherkit.BackendAuto
	}
	return b
}

// LoggingLevel maps LogLevel onto pion/logging, defaulting to warn.
func (c Config) LoggingLevel() logging.LogLevel {
	switch strings.ToLower(c.LogLevel) {
	case "disabled":
		return logging.LogLevelDisabled
	case "error":
		return logging.LogLevelError
	case "info":
		return logging.LogLevelInfo
	case "debug":
		return logging.LogLevelDebug
	case "trace":
		return logging.LogLevelTrace
	default:
		return logging.LogLevelWarn
	}
}

// LoggerFactory returns a pion/logging factory at LoggingLevel.
func (c Config) LoggerFactory() logging.LoggerFactory {
	factory := logging.NewDefaultLoggerFactory()
	factory.DefaultLogLevel = c.LoggingLevel()
	return factory
}
