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

// Combine2 joins two independent generators with f. One child stream per
// operand is split from the source before any operand runs, so an
// operand's consumption never shifts the draws of the ones after it.
// Evaluation is left to right and short-circuits: once an operand fails,
// later operands are not evaluated, and the failure carries the position
// of the first failing operand.
func Combine2[A, B, C any](ga Generator[A], gb Generator[B], f func(A, B) C) Generator[C] {
	return From(func(src rng.Source) (C, error) {
		var zero C
		sa, sb := src.Split(), src.Split()
		a, err := ga.Generate(sa).Get()
		if err != nil {
			return zero, operandErr(1, err)
		}
		b, err := gb.Generate(sb).Get()
		if err != nil {
			return zero, operandErr(2, err)
		}
		return f(a, b), nil
	})
}

// Combine3 joins three independent generators with f. Stream splitting,
// ordering, and short-circuiting follow Combine2.
func Combine3[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], f func(A, B, C) D) Generator[D] {
	return From(func(src rng.Source) (D, error) {
		var zero D
		sa, sb, sc := src.Split(), src.Split(), src.Split()
		a, err := ga.Generate(sa).Get()
		if err != nil {
			return zero, operandErr(1, err)
		}
		b, err := gb.Generate(sb).Get()
		if err != nil {
			return zero, operandErr(2, err)
		}
		c, err := gc.Generate(sc).Get()
		if err != nil {
			return zero, operandErr(3, err)
		}
		return f(a, b, c), nil
	})
}

// Combine4 joins four independent generators with f. Stream splitting,
// ordering, and short-circuiting follow Combine2.
func Combine4[A, B, C, D, E any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], f func(A, B, C, D) E) Generator[E] {
	return From(func(src rng.Source) (E, error) {
		var zero E
		sa, sb, sc, sd := src.Split(), src.Split(), src.Split(), src.Split()
		a, err := ga.Generate(sa).Get()
		if err != nil {
			return zero, operandErr(1, err)
		}
		b, err := gb.Generate(sb).Get()
		if err != nil {
			return zero, operandErr(2, err)
		}
		c, err := gc.Generate(sc).Get()
		if err != nil {
			return zero, operandErr(3, err)
		}
		d, err := gd.Generate(sd).Get()
		if err != nil {
			return zero, operandErr(4, err)
		}
		return f(a, b, c, d), nil
	})
}

func operandErr(pos int, err error) error {
	return fmt.Errorf("combine: operand %d: %w", pos, err)
}
