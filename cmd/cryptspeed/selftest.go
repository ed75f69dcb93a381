// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/pion/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pion/cipherkit"
)

var errSelftest = errors.New("selftest failed")

func newSelftestCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check every primitive against known answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFrom(v)
			if err != nil {
				return err
			}
			return runSelftest(cmd.OutOrStdout(), cfg.LoggerFactory())
		},
	}
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return bindFlags(v, cmd)
	}

	return cmd
}

type knownAnswer struct {
	name string
	run  func() ([]byte, error)
	want string
}

func knownAnswers(loggerFactory logging.LoggerFactory) []knownAnswer {
	answers := []knownAnswer{}

	backends := []cipherkit.Backend{cipherkit.BackendSoftware}
	if cipherkit.HasAESNI() {
		backends = append(backends, cipherkit.BackendAESNI)
	}
	for _, backend := range backends {
		backend := backend
		answers = append(answers,
			knownAnswer{
				name: "aes128 " + backend.String(),
				run: func() ([]byte, error) {
					a, err := cipherkit.NewAES128(unhex("2b7e151628aed2a6abf7158809cf4f3c"),
						cipherkit.WithBackend(backend), cipherkit.WithLoggerFactory(loggerFactory))
					if err != nil {
						return nil, err
					}
					buf := unhex("3243f6a8885a308d313198a2e0370734")
					a.Encrypt(buf)
					return buf, nil
				},
				want: "3925841d02dc09fbdc118597196a0b32",
			},
			knownAnswer{
				name: "aes128-cbc " + backend.String(),
				run: func() ([]byte, error) {
					a, err := cipherkit.NewAES128(unhex("000102030405060708090a0b0c0d0e0f"),
						cipherkit.WithBackend(backend), cipherkit.WithLoggerFactory(loggerFactory))
					if err != nil {
						return nil, err
					}
					buf := make([]byte, 2*cipherkit.BlockSize)
					copy(buf, unhex("00112233445566778899aabbccddeeff"))
					plaintext := append([]byte{}, buf...)
					a.CBCEncrypt(buf)
					out := append([]byte{}, buf[:cipherkit.BlockSize]...)
					a.CBCDecrypt(buf)
					if !bytes.Equal(plaintext, buf) {
						return nil, fmt.Errorf("round trip: %w", errSelftest)
					}
					return out, nil
				},
				want: "69c4e0d86a7b0430d8cdb78070b4c55a",
			},
		)
	}

	answers = append(answers,
		knownAnswer{
			name: "rc4",
			run: func() ([]byte, error) {
				c, err := cipherkit.NewRC4([]byte("Secret"))
				if err != nil {
					return nil, err
				}
				buf := []byte("Attack at dawn")
				c.Encrypt(buf)
				return buf, nil
			},
			want: "45a01f645fc35b383552544b9bf5",
		},
		knownAnswer{
			name: "xorchain",
			run: func() ([]byte, error) {
				buf := make([]byte, 8)
				cipherkit.ChainEncrypt([]byte{0x12, 0x34, 0x56, 0x78}, buf)
				return buf, nil
			},
			want: "122670081a2e7800",
		},
	)
	return answers
}

func runSelftest(w io.Writer, loggerFactory logging.LoggerFactory) error {
	failed := 0
	for _, ka := range knownAnswers(loggerFactory) {
		got, err := ka.run()
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(w, "FAIL %-20s %v\n", ka.name, err)
		case hex.EncodeToString(got) != ka.want:
			failed++
			fmt.Fprintf(w, "FAIL %-20s got %x want %s\n", ka.name, got, ka.want)
		default:
			fmt.Fprintf(w, "ok   %s\n", ka.name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s): %w", failed, errSelftest)
	}
	return nil
}

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
