// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cipherkit

import "fmt"

// Backend selects the implementation of the AES round function.
type Backend uint8

// Supported backends
const (
	// BackendAuto uses AES-NI when HasAESNI reports support and the software
	// backend otherwise.
	BackendAuto Backend = iota
	BackendSoftware
	BackendAESNI
)

func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendSoftware:
		return "software"
	case BackendAESNI:
		return "aesni"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// ParseBackend maps a backend name as printed by String back to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "", "auto":
		return BackendAuto, nil
	case "software":
		return BackendSoftware, nil
	case "aesni":
		return BackendAESNI, nil
	default:
		return 0, fmt.Errorf("no such Backend %q: %w", name, ErrInvalidInput)
	}
}

// resolve turns BackendAuto into a concrete backend for this host.
func (b Backend) resolve() (Backend, error) {
	switch b {
	case BackendAuto:
		if HasAESNI() {
			return BackendAESNI, nil
		}
		return BackendSoftware, nil
	case BackendSoftware:
		return b, nil
	case BackendAESNI:
		if !HasAESNI() {
			return 0, ErrAccelerationUnavailable
		}
		return b, nil
	default:
		return 0, fmt.Errorf("no such Backend %#v: %w", b, ErrInvalidInput)
	}
}
