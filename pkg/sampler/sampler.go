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

// Package sampler compiles a run configuration into generators and draws
// from them, handing every sample to the registered emitters.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kestrelhq/confetti/pkg/blueprint"
	"github.com/kestrelhq/confetti/pkg/config"
	"github.com/kestrelhq/confetti/pkg/emitter"
	"github.com/kestrelhq/confetti/pkg/gen"
	"github.com/kestrelhq/confetti/pkg/rng"
)

// Custom error types
var (
	ErrInvalidCount      = errors.New("invalid sample count")
	ErrNoStreams         = errors.New("no streams defined")
	ErrInvalidStreamName = errors.New("invalid stream name")
	ErrDuplicateStream   = errors.New("duplicate stream")
)

type stream struct {
	name string
	gen  gen.Generator[any]
	src  rng.Source
}

type Sampler struct {
	count    int
	streams  []stream
	emitters []emitter.Emitter
}

// New compiles every configured stream into a generator. Each stream
// draws from its own source derived from the run seed and the stream
// name, so adding or removing a stream leaves the others' values alone.
// A zero seed is resolved to a time-based one here, once for the run.
func New(cfg *config.Config) (*Sampler, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("count %d: %w", cfg.Count, ErrInvalidCount)
	}
	if len(cfg.Streams) == 0 {
		return nil, ErrNoStreams
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Sampler{
		count: cfg.Count,
	}
	names := make(map[string]bool, len(cfg.Streams))
	for _, def := range cfg.Streams {
		if def.Name == "" {
			return nil, ErrInvalidStreamName
		}
		if names[def.Name] {
			return nil, fmt.Errorf("stream %q: %w", def.Name, ErrDuplicateStream)
		}
		names[def.Name] = true

		g, err := blueprint.Build(def.Spec)
		if err != nil {
			return nil, fmt.Errorf("stream %q: %w", def.Name, err)
		}
		s.streams = append(s.streams, stream{
			name: def.Name,
			gen:  g,
			src:  rng.NewNamed(seed, def.Name),
		})
	}
	return s, nil
}

// AddEmitter registers an output for drawn samples.
func (s *Sampler) AddEmitter(e emitter.Emitter) {
	s.emitters = append(s.emitters, e)
}

// Run draws count rounds. Each round draws every stream once, in config
// order, and hands the sample to every emitter. The first failed draw or
// emit aborts the run, wrapped with the stream name and draw index.
func (s *Sampler) Run(ctx context.Context) error {
	for i := range s.count {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, st := range s.streams {
			v, err := st.gen.Generate(st.src).Get()
			if err != nil {
				return fmt.Errorf("stream %q: draw %d: %w", st.name, i, err)
			}
			sample := emitter.Sample{Index: i, Stream: st.name, Value: v}
			for _, e := range s.emitters {
				if err := e.Emit(ctx, sample); err != nil {
					return fmt.Errorf("stream %q: draw %d: %w", st.name, i, err)
				}
			}
		}
	}
	return nil
}
