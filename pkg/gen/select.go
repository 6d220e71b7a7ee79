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
	"slices"

	"github.com/kestrelhq/confetti/pkg/rng"
)

// DefaultSampleProbability is the per-element inclusion probability used
// by SampleBernoulli.
const DefaultSampleProbability = 0.5

// Weighted pairs a non-negative weight with the generator it selects.
type Weighted[A any] struct {
	Weight float64
	Gen    Generator[A]
}

// Choice draws uniformly among options. An empty option list fails with
// ErrEmptyOptions before any randomness is consumed.
func Choice[A any](options ...Generator[A]) Generator[A] {
	if len(options) == 0 {
		return Fail[A](fmt.Errorf("choice: %w", ErrEmptyOptions))
	}
	opts := slices.Clone(options)
	idx := From(func(src rng.Source) (int, error) {
		return src.IntN(len(opts)), nil
	})
	return Bind(idx, func(i int) Generator[A] {
		return opts[i]
	})
}

// PickOne draws uniformly among literal values. An empty value list fails
// with ErrEmptyOptions before any randomness is consumed.
func PickOne[A any](values ...A) Generator[A] {
	if len(values) == 0 {
		return Fail[A](fmt.Errorf("pick one: %w", ErrEmptyOptions))
	}
	vals := slices.Clone(values)
	return From(func(src rng.Source) (A, error) {
		return vals[src.IntN(len(vals))], nil
	})
}

// Frequency draws among options with probability proportional to weight.
// Weights are normalized by their sum; an exactly-zero weight is never
// selected, and a draw landing exactly on a boundary of the cumulative
// partition selects the earlier option in list order. An empty option list
// fails with ErrEmptyOptions, and a negative, non-finite, or all-zero
// weight set fails with ErrInvalidWeight, in both cases before any
// randomness is consumed.
func Frequency[A any](options ...Weighted[A]) Generator[A] {
	if len(options) == 0 {
		return Fail[A](fmt.Errorf("frequency: %w", ErrEmptyOptions))
	}
	opts := slices.Clone(options)
	total := 0.0
	for _, o := range opts {
		if o.Weight < 0 || math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) {
			return Fail[A](fmt.Errorf("frequency: weight %v: %w", o.Weight, ErrInvalidWeight))
		}
		total += o.Weight
	}
	if total == 0 {
		return Fail[A](fmt.Errorf("frequency: weights sum to zero: %w", ErrInvalidWeight))
	}
	u := From(func(src rng.Source) (float64, error) {
		return src.Float64(), nil
	})
	return Bind(u, func(x float64) Generator[A] {
		return opts[weightedIndex(opts, total, x)].Gen
	})
}

// weightedIndex maps a uniform draw onto the cumulative partition of the
// normalized weights, skipping zero-weight options. The fallback covers
// rounding slack when the partition sums to slightly under one.
func weightedIndex[A any](opts []Weighted[A], total, u float64) int {
	cum := 0.0
	last := 0
	for i, o := range opts {
		if o.Weight == 0 {
			continue
		}
		cum += o.Weight / total
		if u <= cum {
			return i
		}
		last = i
	}
	return last
}

// Flip yields true with probability p. A p outside [0, 1] fails with
// ErrInvalidProbability before any randomness is consumed.
func Flip(p float64) Generator[bool] {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Fail[bool](fmt.Errorf("flip: probability %v: %w", p, ErrInvalidProbability))
	}
	return From(func(src rng.Source) (bool, error) {
		return src.Float64() < p, nil
	})
}

// SampleBernoulli includes each value independently with probability
// DefaultSampleProbability, preserving order. It never fails; an empty
// result is valid.
func SampleBernoulli[A any](values []A) Generator[[]A] {
	return SampleBernoulliP(values, DefaultSampleProbability)
}

// SampleBernoulliP includes each value independently with probability p,
// preserving order. A p outside [0, 1] fails with ErrInvalidProbability
// before any randomness is consumed.
func SampleBernoulliP[A any](values []A, p float64) Generator[[]A] {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Fail[[]A](fmt.Errorf("sample bernoulli: probability %v: %w", p, ErrInvalidProbability))
	}
	vals := slices.Clone(values)
	return From(func(src rng.Source) ([]A, error) {
		kept := make([]A, 0, len(vals))
		for _, v := range vals {
			if src.Float64() < p {
				kept = append(kept, v)
			}
		}
		return kept, nil
	})
}
