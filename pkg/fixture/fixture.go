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

// Package fixture hands out values from named generators for test setup.
// Every fixture draws from its own stream derived from the registry seed
// and the fixture name, so draws from one fixture never disturb the
// values another produces, regardless of registration or draw order.
package fixture

import (
	"errors"
	"fmt"
	"time"

	"github.com/kestrelhq/confetti/pkg/gen"
	"github.com/kestrelhq/confetti/pkg/rng"
)

// Custom error types
var (
	ErrInvalidFixtureName = errors.New("invalid fixture name")
	ErrDuplicateFixture   = errors.New("duplicate fixture")
	ErrUnknownFixture     = errors.New("unknown fixture")
)

// Registry holds named generators and one stream per name. It is not
// safe for concurrent use.
type Registry struct {
	seed    uint64
	gens    map[string]gen.Generator[any]
	streams map[string]rng.Source
}

// NewRegistry returns an empty registry. A zero seed picks a time-based
// seed once, so all fixtures of the registry still share one seed.
func NewRegistry(seed uint64) *Registry {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Registry{
		seed:    seed,
		gens:    map[string]gen.Generator[any]{},
		streams: map[string]rng.Source{},
	}
}

// Register adds g under name.
func (r *Registry) Register(name string, g gen.Generator[any]) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidFixtureName)
	}
	if _, ok := r.gens[name]; ok {
		return fmt.Errorf("fixture %q: %w", name, ErrDuplicateFixture)
	}
	r.gens[name] = g
	return nil
}

// Draw produces the next value of the named fixture.
func (r *Registry) Draw(name string) (any, error) {
	g, ok := r.gens[name]
	if !ok {
		return nil, fmt.Errorf("fixture %q: %w", name, ErrUnknownFixture)
	}
	src, ok := r.streams[name]
	if !ok {
		src = rng.NewNamed(r.seed, name)
		r.streams[name] = src
	}
	return g.Generate(src).Get()
}

// DrawAs draws the named fixture and asserts its type.
func DrawAs[T any](r *Registry, name string) (T, error) {
	var zero T
	v, err := r.Draw(name)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("fixture %q holds %T, not %T", name, v, zero)
	}
	return tv, nil
}
