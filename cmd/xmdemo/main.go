// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command xmdemo prints worked examples of the xm vector algebra package.
//
// Usage:
//
//	xmdemo                    # every section
//	xmdemo functions          # elementwise functions, swizzles, saturate
//	xmdemo algebra            # length, normalize, dot, cross, projection, angles
//	xmdemo precision          # float equality pitfalls
//	xmdemo precision --epsilon 1e-6 --verbose
//
// Setting HWY_NO_SIMD reports the scalar dispatch level; results are the
// same on every level.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"

	"github.com/go-xmvec/xmvec/hwy"
	"github.com/go-xmvec/xmvec/xm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	epsilon      float32
	verbose      bool
	skipCPUCheck bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "xmdemo",
		Short:         "Print worked examples of the xm vector algebra package",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, sections...)
		},
	}

	flags := root.PersistentFlags()
	flags.Float32Var(&opts.epsilon, "epsilon", xm.DefaultEpsilon, "tolerance used by the precision checks")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log CPU dispatch details")
	flags.BoolVar(&opts.skipCPUCheck, "skip-cpu-check", false, "run even if the CPU lacks the 128-bit SIMD baseline")

	for _, s := range sections {
		root.AddCommand(&cobra.Command{
			Use:   s.name,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, opts, s)
			},
		})
	}
	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Print every section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, sections...)
		},
	})

	return root
}

// setup validates flags, builds the logger and applies the CPU gate.
func (o *options) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if math32.IsNaN(o.epsilon) || o.epsilon <= 0 {
		return fmt.Errorf("xmdemo: --epsilon must be positive, got %v", o.epsilon)
	}

	o.logger.Debug("cpu dispatch",
		"dispatch", hwy.CurrentName(),
		"width", hwy.CurrentWidth(),
		"no_simd", hwy.NoSimdEnv(),
		"supported", hwy.VerifyCPUSupport())

	if !hwy.VerifyCPUSupport() {
		if !o.skipCPUCheck {
			o.logger.Error("vector math not supported on this CPU", "dispatch", hwy.CurrentName())
			return errors.New("xmdemo: vector math not supported on this CPU")
		}
		o.logger.Warn("CPU check skipped", "dispatch", hwy.CurrentName())
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, secs ...section) error {
	w := cmd.OutOrStdout()
	for i, s := range secs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		opts.logger.Debug("section", "name", s.name)
		if err := s.build(opts).write(w); err != nil {
			return err
		}
	}
	return nil
}
