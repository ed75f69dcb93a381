// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"github.com/pion/logging"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// AES128KeySize is the AES-128 key size in bytes.
	AES128KeySize = 16
)

// AES128 is an AES-128 engine. It is immutable once built, so one engine may
// be shared by many goroutines as long as each works on its own buffer.
type AES128 struct {
	ks      keySchedule
	backend Backend
}

// NewAES128 expands key into a round-key schedule. By default the inverse
// keys are derived as well and the backend is chosen with HasAESNI.
func NewAES128(key []byte, opts ...AESOption) (*AES128, error) {
	if len(key) != AES128KeySize {
		return nil, &KeySizeError{Cipher: "aes128", Size: len(key)}
	}

	cfg := defaultAESConfig()
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			return nil, err
		}
	}

	backend, err := cfg.backend.resolve()
	if err != nil {
		return nil, err
	}

	a := &AES128{backend: backend}
	a.ks.expandKey(key, cfg.withDecryption)

	loggerFactory := cfg.loggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}
	log := loggerFactory.NewLogger("cipherkit")
	log.Debugf("aes128 engine ready: backend=%s decrypt=%t", backend, cfg.withDecryption)

	return a, nil
}

// Backend returns the backend the engine runs on.
func (a *AES128) Backend() Backend {
	return a.backend
}

// CanDecrypt reports whether the inverse round keys were derived.
func (a *AES128) CanDecrypt() bool {
	return a.ks.hasDec
}

// RoundKeys returns a copy of the forward round keys 0..10.
func (a *AES128) RoundKeys() [11][BlockSize]byte {
	return a.ks.enc
}

// InverseRoundKeys returns a copy of the equivalent inverse round keys,
// InvMixColumns applied to round keys 9 down to 1. It is all zero when the
// engine was built WithoutDecryption.
func (a *AES128) InverseRoundKeys() [9][BlockSize]byte {
	return a.ks.dec
}

// EncryptBlock encrypts the first block of src into dst. dst and src may
// alias exactly.
func (a *AES128) EncryptBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panicInput("aes128.EncryptBlock", "input not full block")
	}
	if len(dst) < BlockSize {
		panicInput("aes128.EncryptBlock", "output not full block")
	}
	a.encryptBlock(dst, src)
}

// DecryptBlock decrypts the first block of src into dst. dst and src may
// alias exactly.
func (a *AES128) DecryptBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panicInput("aes128.DecryptBlock", "input not full block")
	}
	if len(dst) < BlockSize {
		panicInput("aes128.DecryptBlock", "output not full block")
	}
	a.checkDecrypt("aes128.DecryptBlock")
	a.decryptBlock(dst, src)
}

func (a *AES128) checkDecrypt(op string) {
	if !a.ks.hasDec {
		panicInput(op, "%v", errDecryptionDisabled)
	}
}

func (a *AES128) encryptBlock(dst, src []byte) {
	if a.backend == BackendAESNI {
		encryptBlockAccel(&a.ks.enc, dst, src)
		return
	}
	encryptBlockGeneric(&a.ks.enc, dst, src)
}

func (a *AES128) decryptBlock(dst, src []byte) {
	if a.backend == BackendAESNI {
		decryptBlockAccel(&a.ks.enc, &a.ks.dec, dst, src)
		return
	}
	decryptBlockGeneric(&a.ks.enc, &a.ks.dec, dst, src)
}
