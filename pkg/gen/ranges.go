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
	"math"

	"github.com/kestrelhq/confetti/pkg/rng"
)

// IntRange yields a uniform int in [low, high], inclusive on both ends. A
// low greater than high, or a span too wide for int, fails with
// ErrInvalidRange before any randomness is consumed.
func IntRange(low, high int) Generator[int] {
	if low > high {
		return Fail[int](fmt.Errorf("int range [%d, %d]: %w", low, high, ErrInvalidRange))
	}
	width := uint64(high) - uint64(low) + 1
	if width == 0 || width > uint64(math.MaxInt) {
		return Fail[int](fmt.Errorf("int range [%d, %d]: span overflows int: %w", low, high, ErrInvalidRange))
	}
	return From(func(src rng.Source) (int, error) {
		return low + src.IntN(int(width)), nil
	})
}

// Float64Range yields a uniform float64 in [low, high), closed at low and
// open at high. Equal bounds degenerate to low. A low greater than high, a
// non-finite bound, or a span too wide for float64 fails with
// ErrInvalidRange before any randomness is consumed.
func Float64Range(low, high float64) Generator[float64] {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		return Fail[float64](fmt.Errorf("float range [%g, %g): %w", low, high, ErrInvalidRange))
	}
	if math.IsInf(high-low, 0) {
		return Fail[float64](fmt.Errorf("float range [%g, %g): span overflows: %w", low, high, ErrInvalidRange))
	}
	if low == high {
		return Const(low)
	}
	return From(func(src rng.Source) (float64, error) {
		v := low + src.Float64()*(high-low)
		// rounding can land exactly on high; keep the interval open there
		if v >= high {
			v = math.Nextafter(high, low)
		}
		return v, nil
	})
}
