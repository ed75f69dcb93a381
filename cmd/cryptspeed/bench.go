// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pion/cipherkit/internal/bench"
)

func newBenchCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the throughput benchmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, v)
		},
	}
	addBenchFlags(cmd.Flags())
	cmd.PreRunE = loadConfig(v)

	return cmd
}

func runBench(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := configFrom(v)
	if err != nil {
		return err
	}

	loggerFactory := cfg.LoggerFactory()
	params := bench.Params{
		Secret:  []byte(cfg.Secret),
		Backend: cfg.AESBackend(),
	}
	runner := bench.NewRunner(cfg.Size, cfg.Count, cfg.Parallel, cfg.Seed, params, loggerFactory)

	out := cmd.OutOrStdout()
	total := uint64(cfg.Size) * uint64(cfg.Count)
	fmt.Fprintf(out, "%d messages of %s (%s total) on %d worker(s)\n",
		cfg.Count, humanize.IBytes(uint64(cfg.Size)), humanize.IBytes(total), cfg.Parallel)

	for _, name := range cfg.Cases {
		c, err := bench.Lookup(name)
		if err != nil {
			return err
		}

		res, err := runner.Run(cmd.Context(), c)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%-11s %-40s %10v %12s/s  checksum %08x\n",
			c.Name, c.Description, res.Elapsed.Round(time.Microsecond),
			humanize.IBytes(uint64(res.Throughput())), res.Checksum)
	}
	return nil
}
