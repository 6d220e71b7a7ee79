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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/confetti/pkg/rng"
)

func TestCombine2(t *testing.T) {
	t.Run("JoinsValues", func(t *testing.T) {
		g := Combine2(Const(2), Const("x"), func(n int, s string) string {
			return fmt.Sprintf("%s%d", s, n)
		})
		assert.Equal(t, "x2", g.Generate(rng.New(1)).Must())
	})

	t.Run("Deterministic", func(t *testing.T) {
		g := Combine2(IntRange(0, 999), IntRange(0, 999), func(a, b int) [2]int {
			return [2]int{a, b}
		})
		assert.Equal(t, g.Generate(rng.New(7)).Must(), g.Generate(rng.New(7)).Must())
	})
}

func TestCombineFailureAttribution(t *testing.T) {
	boom := errors.New("boom")

	t.Run("FirstOperand", func(t *testing.T) {
		g := Combine2(Fail[int](boom), Const(1), func(a, b int) int { return a + b })
		_, err := g.Generate(rng.New(1)).Get()
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "operand 1")
	})

	t.Run("SecondOperand", func(t *testing.T) {
		g := Combine2(Const(1), Fail[int](boom), func(a, b int) int { return a + b })
		_, err := g.Generate(rng.New(1)).Get()
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "operand 2")
	})

	t.Run("ThirdOperand", func(t *testing.T) {
		g := Combine3(Const(1), Const(2), Fail[int](boom), func(a, b, c int) int { return a + b + c })
		_, err := g.Generate(rng.New(1)).Get()
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "operand 3")
	})

	t.Run("FourthOperand", func(t *testing.T) {
		g := Combine4(Const(1), Const(2), Const(3), Fail[int](boom), func(a, b, c, d int) int { return a + b + c + d })
		_, err := g.Generate(rng.New(1)).Get()
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "operand 4")
	})
}

func TestCombineShortCircuits(t *testing.T) {
	boom := errors.New("boom")
	evaluated := false
	spy := From(func(rng.Source) (int, error) {
		evaluated = true
		return 0, nil
	})

	g := Combine2(Fail[int](boom), spy, func(a, b int) int { return a + b })
	_, err := g.Generate(rng.New(1)).Get()
	require.ErrorIs(t, err, boom)
	assert.False(t, evaluated)
}

// An operand's stream must not depend on how much randomness the operands
// before it consumed.
func TestCombineStreamStability(t *testing.T) {
	second := IntRange(0, 1<<30)

	short := Combine2(IntRange(0, 9), second, func(_, b int) int { return b })
	long := Combine2(Replicate(10, IntRange(0, 9)), second, func(_ []int, b int) int { return b })

	assert.Equal(t,
		short.Generate(rng.New(99)).Must(),
		long.Generate(rng.New(99)).Must())
}

func TestCombine3(t *testing.T) {
	g := Combine3(Const(1), Const(2), Const(3), func(a, b, c int) int {
		return a + b + c
	})
	assert.Equal(t, 6, g.Generate(rng.New(1)).Must())
}

func TestCombine4(t *testing.T) {
	g := Combine4(Const(1), Const(2), Const(3), Const(4), func(a, b, c, d int) int {
		return a + b + c + d
	})
	assert.Equal(t, 10, g.Generate(rng.New(1)).Must())
}
