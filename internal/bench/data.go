// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package bench

// Filler produces a reproducible stream of message bytes from a
// multiplicative congruential generator.
type Filler struct {
	state uint32
}

// NewFiller returns a Filler starting from seed. A zero seed yields only
// zeros.
func NewFiller(seed uint32) *Filler {
	return &Filler{state: seed}
}

// Fill overwrites buf with the next len(buf) bytes of the stream.
func (f *Filler) Fill(buf []byte) {
	state := f.state
	for i := range buf {
		state *= 1103515245
		buf[i] = byte(state >> 16)
	}
	f.state = state
}

// Checksum sums the bytes of buf. Folding every output into it keeps the
// compiler from discarding the work being timed.
func Checksum(buf []byte) uint32 {
	var sum uint32
	for _, b := range buf {
		sum += uint32(b)
	}
	return sum
}
