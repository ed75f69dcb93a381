// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package keystream exposes the raw keystream of a cipher.Stream as an
// io.Reader, so a stream cipher can seed key material for other primitives.
package keystream

import (
	"crypto/cipher"
)

const streamBufferSize = 512

// Reader reads keystream bytes, that is the stream XORed onto zeros.
type Reader struct {
	s       cipher.Stream
	out     [streamBufferSize]byte
	outUsed int
}

// New returns a Reader that draws from s. The Reader owns s from then on:
// keystream is generated ahead in blocks of streamBufferSize bytes.
func New(s cipher.Stream) *Reader {
	if s == nil {
		panic("keystream.New: nil stream")
	}

	r := &Reader{s: s}
	r.outUsed = len(r.out)
	return r
}

// Read fills p with keystream. It never returns an error.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.outUsed == len(r.out) {
			r.refill()
		}
		c := copy(p[n:], r.out[r.outUsed:])
		r.outUsed += c
		n += c
	}
	return n, nil
}

func (r *Reader) refill() {
	for i := range r.out {
		r.out[i] = 0
	}
	r.s.XORKeyStream(r.out[:], r.out[:])
	r.outUsed = 0
}
