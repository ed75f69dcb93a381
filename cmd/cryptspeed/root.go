// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pion/cipherkit/internal/bench"
	"github.com/pion/cipherkit/internal/config"
)

const envPrefix = "CRYPTSPEED"

// newRootCommand builds the command tree. Running it without a subcommand
// runs the benchmark.
func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "cryptspeed [flags] [command]",
		Short:         "Symmetric cipher throughput benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Benchmarks the byte chain cipher, RC4 and AES-128 (ECB and CBC) against a
ChaCha20 reference on generated messages.

Every flag can also be set through a CRYPTSPEED_<FLAG> environment variable.`,
	}
	root.PersistentFlags().String("log-level", "warn", "Log level: disabled, error, warn, info, debug or trace")
	addBenchFlags(root.Flags())

	root.PreRunE = loadConfig(v)
	root.RunE = func(cmd *cobra.Command, _ []string) error {
		return runBench(cmd, v)
	}

	root.AddCommand(newBenchCommand(v), newCPUCommand(), newSelftestCommand(v))
	return root
}

func addBenchFlags(fs *pflag.FlagSet) {
	fs.StringSlice("cases", bench.Names(), "Cases to run, in order")
	fs.Int("size", config.DefaultSize, "Message size in bytes")
	fs.Int("count", config.DefaultCount, "Messages per case")
	fs.IntP("parallel", "j", 1, fmt.Sprintf("Parallel workers, up to %d CPUs available", runtime.NumCPU()))
	fs.Uint32("seed", config.DefaultSeed, "Seed of the message generator")
	fs.String("secret", config.DefaultSecret, "Secret stretched into every key")
	fs.String("backend", "auto", "AES backend: auto, software or aesni")
}

// bindFlags makes the command's flags, including inherited ones, visible to v.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// loadConfig binds the command's flags and validates the configuration they
// produce together with the environment.
func loadConfig(v *viper.Viper) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := bindFlags(v, cmd); err != nil {
			return err
		}

		cfg, err := configFrom(v)
		if err != nil {
			return err
		}
		return cfg.Validate()
	}
}

// configFrom unmarshals the flags and environment bound to v.
func configFrom(v *viper.Viper) (config.Config, error) {
	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}
