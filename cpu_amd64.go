// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build amd64 && !purego

package cipherkit

import "golang.org/x/sys/cpu"

var hasAESNI = cpu.X86.HasAES && cpu.X86.HasSSE2

// HasAESNI reports whether this process can run the AES-NI backend.
// Callers that require the accelerated engine must check it first.
func HasAESNI() bool {
	return hasAESNI
}
