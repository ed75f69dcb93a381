// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import (
	"unsafe"

	"github.com/pion/transport/v3/utils/xor"
)

// xorBytes computes the exclusive-or of src1 and src2 and stores it in dst.
// It returns the number of bytes written.
func xorBytes(dst, src1, src2 []byte) int {
	n := len(src1)
	if len(src2) < n {
		n = len(src2)
	}
	if len(dst) < n {
		n = len(dst)
	}
	return xor.XorBytes(dst[:n], src1[:n], src2[:n])
}

// checkBlocks panics unless buf is a whole number of AES blocks.
func checkBlocks(op string, buf []byte) {
	if len(buf)%BlockSize != 0 {
		panicInput(op, "buffer length %d is not a multiple of %d", len(buf), BlockSize)
	}
}

// inexactOverlap reports whether x and y share memory at any non-corresponding
// index.
func inexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return anyOverlap(x, y)
}

// anyOverlap reports whether x and y share memory at any index.
func anyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}
