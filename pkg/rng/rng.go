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

// Package rng provides the splittable pseudo-random streams that generators
// draw from. Streams are PCG-backed and fully determined by their seed, so a
// run that starts from the same seed replays the same values.
package rng

import (
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Source is a stream of pseudo-random values that can be split into
// independent child streams.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
	// Split returns a child stream seeded from the receiver. Splitting
	// advances the receiver's state; afterwards the two streams share no
	// state and produce uncorrelated values.
	Split() Source
}

type pcgSource struct {
	r *rand.Rand
}

// New returns a PCG-backed Source. A zero seed selects a time-based seed.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed))}
}

// NewNamed returns the stream a name selects under the given seed. The same
// (seed, name) pair always yields the same stream, and distinct names yield
// independent streams, so adding or removing one named stream does not
// disturb the others. A zero seed selects a time-based seed.
func NewNamed(seed uint64, name string) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, xxhash.Sum64String(name)))}
}

// FromRand wraps an existing rand.Rand as a Source. The caller keeps
// ownership; draws and splits advance the wrapped generator.
func FromRand(r *rand.Rand) Source {
	return &pcgSource{r: r}
}

func (s *pcgSource) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *pcgSource) Float64() float64 {
	return s.r.Float64()
}

func (s *pcgSource) Split() Source {
	return &pcgSource{r: rand.New(rand.NewPCG(s.r.Uint64(), s.r.Uint64()))}
}
