// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/pion/cipherkit"
)

func newCPUCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Report the CPU and the AES backend it allows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeCPUReport(cmd.OutOrStdout())
			return nil
		},
	}
}

func writeCPUReport(w io.Writer) {
	cpu := cpuid.CPU

	fmt.Fprintf(w, "cpu:        %s (%s)\n", cpu.BrandName, cpu.VendorString)
	fmt.Fprintf(w, "platform:   %s/%s, %d logical cores\n", runtime.GOOS, runtime.GOARCH, cpu.LogicalCores)
	fmt.Fprintf(w, "features:   %s\n", strings.Join(cpu.FeatureSet(), " "))
	fmt.Fprintf(w, "cpuid aes:  %t\n", cpu.Supports(cpuid.AESNI, cpuid.SSE2))

	backend := cipherkit.BackendSoftware
	if cipherkit.HasAESNI() {
		backend = cipherkit.BackendAESNI
	}
	fmt.Fprintf(w, "aes-ni:     %t\n", cipherkit.HasAESNI())
	fmt.Fprintf(w, "backend:    %s\n", backend)
}
