// Copyright 2025 Kestrel Labs, Inc
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

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelhq/confetti/pkg/config"
	"github.com/kestrelhq/confetti/pkg/emitter"
	"github.com/kestrelhq/confetti/pkg/sampler"
)

var (
	sampleCount    int
	sampleSeed     uint64
	sampleFormat   string
	sampleProgress bool
)

var SampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw samples from configured streams",
	Long:  `Draw samples from the streams described in the provided configuration files and write them to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("no config files provided")
		}
		return Sample(cmd, args, os.Stdout)
	},
}

func init() {
	SampleCmd.Flags().IntVar(&sampleCount, "count", 0, "draws per stream, overrides the config")
	SampleCmd.Flags().Uint64Var(&sampleSeed, "seed", 0, "run seed, overrides the config")
	SampleCmd.Flags().StringVar(&sampleFormat, "format", "", "output format, json or text, overrides the config")
	SampleCmd.Flags().BoolVar(&sampleProgress, "progress", false, "write a progress line to stderr")
}

func Sample(cmd *cobra.Command, args []string, out io.Writer) error {
	// load the config files in order, merging as we go
	cfg, err := config.LoadConfigs(args)
	if err != nil {
		return fmt.Errorf("error loading config files: %w", err)
	}
	if sampleCount > 0 {
		cfg.Count = sampleCount
	}
	if sampleSeed != 0 {
		cfg.Seed = sampleSeed
	}
	if sampleFormat != "" {
		cfg.Format = sampleFormat
	}

	s, err := sampler.New(cfg)
	if err != nil {
		return fmt.Errorf("error building sampler: %w", err)
	}

	switch cfg.Format {
	case "json":
		s.AddEmitter(emitter.NewJSONEmitter(out))
	case "text":
		s.AddEmitter(emitter.NewTextEmitter(out))
	default:
		return fmt.Errorf("unknown output format: %s", cfg.Format)
	}
	if sampleProgress {
		s.AddEmitter(emitter.NewProgressEmitter(os.Stderr, cfg.Count*len(cfg.Streams)))
	}

	return s.Run(cmd.Context())
}
