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

package gen

import (
	"fmt"

	"github.com/kestrelhq/confetti/pkg/rng"
)

// Replicate yields a slice of n values drawn from g, each against its own
// child stream split from the source in index order. A zero n yields an
// empty slice without consuming randomness; a negative n fails with
// ErrInvalidRange. The first failing element (lowest index) determines the
// reported failure and the elements after it are not evaluated.
func Replicate[A any](n int, g Generator[A]) Generator[[]A] {
	if n < 0 {
		return Fail[[]A](fmt.Errorf("replicate: count %d: %w", n, ErrInvalidRange))
	}
	return From(func(src rng.Source) ([]A, error) {
		if n == 0 {
			return []A{}, nil
		}
		streams := make([]rng.Source, n)
		for i := range streams {
			streams[i] = src.Split()
		}
		out := make([]A, 0, n)
		for i, s := range streams {
			v, err := g.Generate(s).Get()
			if err != nil {
				return nil, fmt.Errorf("replicate: element %d: %w", i, err)
			}
			out = append(out, v)
		}
		return out, nil
	})
}

// ReplicateBetween yields a slice whose length is drawn uniformly from
// [low, high] and whose elements are drawn as in Replicate. Bounds are
// validated as in IntRange.
func ReplicateBetween[A any](low, high int, g Generator[A]) Generator[[]A] {
	return Bind(IntRange(low, high), func(n int) Generator[[]A] {
		return Replicate(n, g)
	})
}
