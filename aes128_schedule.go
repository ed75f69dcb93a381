// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

const (
	rounds      = 10
	roundKeys   = rounds + 1
	inverseKeys = rounds - 1
)

// keySchedule holds the forward round keys 0..10 and, when decryption is
// enabled, the equivalent inverse keys InvMixColumns(k9) .. InvMixColumns(k1)
// in that order. It is never modified after expandKey returns.
type keySchedule struct {
	enc    [roundKeys][BlockSize]byte
	dec    [inverseKeys][BlockSize]byte
	hasDec bool
}

func (ks *keySchedule) expandKey(key []byte, withDecryption bool) {
	copy(ks.enc[0][:], key)

	rcon := byte(0x01)
	for r := 1; r < roundKeys; r++ {
		prev, next := &ks.enc[r-1], &ks.enc[r]

		// RotWord + SubWord on the last word, then the round constant.
		next[0] = prev[0] ^ sbox[prev[13]] ^ rcon
		next[1] = prev[1] ^ sbox[prev[14]]
		next[2] = prev[2] ^ sbox[prev[15]]
		next[3] = prev[3] ^ sbox[prev[12]]
		for i := 4; i < BlockSize; i++ {
			next[i] = prev[i] ^ next[i-4]
		}

		rcon = xtime(rcon)
	}

	if !withDecryption {
		return
	}
	for i := 0; i < inverseKeys; i++ {
		ks.dec[i] = ks.enc[rounds-1-i]
		invMixColumns(&ks.dec[i])
	}
	ks.hasDec = true
}
