// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"sort"

	"github.com/pion/logging"
	"golang.org/x/crypto/chacha20"

	"github.com/pion/cipherkit"
)

// Params carries what a Case needs to build its primitive.
type Params struct {
	Secret        []byte
	Size          int
	Backend       cipherkit.Backend
	LoggerFactory logging.LoggerFactory
}

// Case is one benchmarked primitive. New is called once per worker, so the
// returned transform may keep state without locking.
type Case struct {
	Name        string
	Description string
	// BlockAligned cases need Size to be a multiple of cipherkit.BlockSize.
	BlockAligned bool
	New          func(p Params) (func(buf []byte), error)
}

var cases = map[string]Case{
	"xorchain": {
		Name:        "xorchain",
		Description: "byte chain XOR, key as long as the message",
		New: func(p Params) (func([]byte), error) {
			key, err := cipherkit.DeriveKey(p.Secret, p.Size)
			if err != nil {
				return nil, err
			}
			return func(buf []byte) { cipherkit.ChainEncrypt(key, buf) }, nil
		},
	},
	"rc4": {
		Name:        "rc4",
		Description: "RC4 encrypt",
		New: func(p Params) (func([]byte), error) {
			c, err := cipherkit.NewRC4(p.Secret)
			if err != nil {
				return nil, err
			}
			return c.Transform, nil
		},
	},
	"aes128": {
		Name:         "aes128",
		Description:  "AES-128 ECB encrypt",
		BlockAligned: true,
		New: func(p Params) (func([]byte), error) {
			a, err := newAES128(p)
			if err != nil {
				return nil, err
			}
			return a.Encrypt, nil
		},
	},
	"aes128-cbc": {
		Name:         "aes128-cbc",
		Description:  "AES-128 + CBC encrypt",
		BlockAligned: true,
		New: func(p Params) (func([]byte), error) {
			a, err := newAES128(p)
			if err != nil {
				return nil, err
			}
			return a.CBCEncrypt, nil
		},
	},
	"chacha20": {
		Name:        "chacha20",
		Description: "ChaCha20 keystream (reference)",
		New: func(p Params) (func([]byte), error) {
			key, err := cipherkit.DeriveKey(p.Secret, chacha20.KeySize)
			if err != nil {
				return nil, err
			}
			c, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
			if err != nil {
				return nil, err
			}
			return func(buf []byte) { c.XORKeyStream(buf, buf) }, nil
		},
	},
}

func newAES128(p Params) (*cipherkit.AES128, error) {
	key, err := cipherkit.DeriveKey(p.Secret, cipherkit.AES128KeySize)
	if err != nil {
		return nil, err
	}

	opts := []cipherkit.AESOption{
		cipherkit.WithBackend(p.Backend),
		cipherkit.WithoutDecryption(),
	}
	if p.LoggerFactory != nil {
		opts = append(opts, cipherkit.WithLoggerFactory(p.LoggerFactory))
	}
	return cipherkit.NewAES128(key, opts...)
}

// Lookup returns the case registered under name.
func Lookup(name string) (Case, error) {
	c, ok := cases[name]
	if !ok {
		return Case{}, fmt.Errorf("%w %q", errUnknownCase, name)
	}
	return c, nil
}

// Names lists the registered cases in the order the benchmark runs them.
func Names() []string {
	order := map[string]int{"xorchain": 0, "rc4": 1, "aes128": 2, "aes128-cbc": 3, "chacha20": 4}
	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return order[names[i]] < order[names[j]] })
	return names
}
