// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !amd64 || purego

package cipherkit

// HasAESNI reports whether this process can run the AES-NI backend.
// It is always false on this platform.
func HasAESNI() bool {
	return false
}
