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

// Normal yields a normally distributed float64 with the given mean and
// standard deviation. A zero stddev degenerates to the mean; a negative or
// non-finite stddev fails with ErrInvalidRange before any randomness is
// consumed.
func Normal(mean, stddev float64) Generator[float64] {
	if math.IsNaN(stddev) || math.IsInf(stddev, 0) || stddev < 0 {
		return Fail[float64](fmt.Errorf("normal: stddev %g: %w", stddev, ErrInvalidRange))
	}
	if stddev == 0 {
		return Const(mean)
	}
	return From(func(src rng.Source) (float64, error) {
		return mean + normFloat64(src)*stddev, nil
	})
}

// normFloat64 draws a standard normal variate by Box-Muller. Two uniform
// draws are consumed per variate.
func normFloat64(src rng.Source) float64 {
	u1 := src.Float64()
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(1-u1)) * math.Cos(2*math.Pi*u2)
}

// Poisson yields a Poisson-distributed count with mean lambda. A zero
// lambda degenerates to zero; a negative or non-finite lambda fails with
// ErrInvalidRange before any randomness is consumed.
func Poisson(lambda float64) Generator[int] {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		return Fail[int](fmt.Errorf("poisson: lambda %g: %w", lambda, ErrInvalidRange))
	}
	if lambda == 0 {
		return Const(0)
	}
	return From(func(src rng.Source) (int, error) {
		return samplePoisson(lambda, src), nil
	})
}

// samplePoisson returns a Poisson(λ) variate.
// Uses Knuth's algorithm when λ<30, otherwise a normal approximation.
func samplePoisson(λ float64, src rng.Source) int {
	if λ < 30 {
		L := math.Exp(-λ)
		k, p := 0, 1.0
		for p > L {
			k++
			p *= src.Float64()
		}
		return k - 1
	}
	// approximation: N(λ,λ) rounded to the nearest non-negative int
	return int(max(math.Round(normFloat64(src)*math.Sqrt(λ)+λ), 0))
}
