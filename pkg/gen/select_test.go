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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/confetti/pkg/rng"
)

func TestChoice(t *testing.T) {
	t.Run("EmptyFailsWithoutDrawing", func(t *testing.T) {
		cs := &countingSource{src: rng.New(1)}
		_, err := Choice[int]().Generate(cs).Get()
		assert.ErrorIs(t, err, ErrEmptyOptions)
		assert.Equal(t, 0, cs.draws)
		assert.Equal(t, 0, cs.splits)
	})

	t.Run("SingleOption", func(t *testing.T) {
		v := Choice(Const("only")).Generate(rng.New(1)).Must()
		assert.Equal(t, "only", v)
	})

	t.Run("CoversAllOptions", func(t *testing.T) {
		src := rng.New(123)
		g := Choice(Const("a"), Const("b"), Const("c"))
		seen := map[string]int{}
		for range 1000 {
			seen[g.Generate(src).Must()]++
		}
		assert.Len(t, seen, 3)
	})

	t.Run("PropagatesFailureUnchanged", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Choice(Fail[int](boom)).Generate(rng.New(1)).Get()
		assert.Equal(t, boom, err)
	})
}

func TestPickOne(t *testing.T) {
	t.Run("EmptyFailsWithoutDrawing", func(t *testing.T) {
		cs := &countingSource{src: rng.New(1)}
		_, err := PickOne[string]().Generate(cs).Get()
		assert.ErrorIs(t, err, ErrEmptyOptions)
		assert.Equal(t, 0, cs.draws)
	})

	t.Run("CoversAllValues", func(t *testing.T) {
		src := rng.New(123)
		g := PickOne(1, 2, 3)
		seen := map[int]int{}
		for range 1000 {
			seen[g.Generate(src).Must()]++
		}
		assert.Len(t, seen, 3)
	})
}

func TestFrequencyValidation(t *testing.T) {
	tests := []struct {
		name    string
		options []Weighted[string]
		want    error
	}{
		{
			name:    "Empty",
			options: nil,
			want:    ErrEmptyOptions,
		},
		{
			name: "NegativeWeight",
			options: []Weighted[string]{
				{Weight: -1, Gen: Const("a")},
			},
			want: ErrInvalidWeight,
		},
		{
			name: "NaNWeight",
			options: []Weighted[string]{
				{Weight: math.NaN(), Gen: Const("a")},
			},
			want: ErrInvalidWeight,
		},
		{
			name: "InfiniteWeight",
			options: []Weighted[string]{
				{Weight: math.Inf(1), Gen: Const("a")},
			},
			want: ErrInvalidWeight,
		},
		{
			name: "ZeroSum",
			options: []Weighted[string]{
				{Weight: 0, Gen: Const("a")},
				{Weight: 0, Gen: Const("b")},
			},
			want: ErrInvalidWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := &countingSource{src: rng.New(1)}
			_, err := Frequency(tt.options...).Generate(cs).Get()
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, cs.draws)
		})
	}
}

func TestFrequencyBoundary(t *testing.T) {
	g := Frequency(
		Weighted[string]{Weight: 0.2, Gen: Const("a")},
		Weighted[string]{Weight: 0.8, Gen: Const("b")},
	)

	t.Run("TieSelectsEarlierOption", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{0.2}}
		assert.Equal(t, "a", g.Generate(src).Must())
	})

	t.Run("JustPastBoundary", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{math.Nextafter(0.2, 1)}}
		assert.Equal(t, "b", g.Generate(src).Must())
	})

	t.Run("ZeroWeightNeverClaimsBoundary", func(t *testing.T) {
		zg := Frequency(
			Weighted[string]{Weight: 0, Gen: Const("never")},
			Weighted[string]{Weight: 1, Gen: Const("always")},
		)
		src := &scriptedSource{floats: []float64{0}}
		assert.Equal(t, "always", zg.Generate(src).Must())
	})
}

func TestFrequencyDistribution(t *testing.T) {
	src := rng.New(123)
	g := Frequency(
		Weighted[string]{Weight: 0.2, Gen: Const("A")},
		Weighted[string]{Weight: 0.8, Gen: Const("B")},
	)

	samples := 100000
	countA := 0
	for range samples {
		if g.Generate(src).Must() == "A" {
			countA++
		}
	}

	ratio := float64(countA) / float64(samples)
	if math.Abs(ratio-0.2) > 0.02 {
		t.Errorf("frequency ratio = %v, expected approximately 0.2", ratio)
	}
}

func TestFrequencyZeroWeightNeverSelected(t *testing.T) {
	src := rng.New(123)
	g := Frequency(
		Weighted[string]{Weight: 0.5, Gen: Const("a")},
		Weighted[string]{Weight: 0, Gen: Const("never")},
		Weighted[string]{Weight: 0.5, Gen: Const("b")},
	)

	for range 10000 {
		assert.NotEqual(t, "never", g.Generate(src).Must())
	}
}

func TestFlip(t *testing.T) {
	t.Run("AlwaysFalseAtZero", func(t *testing.T) {
		src := rng.New(123)
		g := Flip(0)
		for range 1000 {
			assert.False(t, g.Generate(src).Must())
		}
	})

	t.Run("AlwaysTrueAtOne", func(t *testing.T) {
		src := rng.New(123)
		g := Flip(1)
		for range 1000 {
			assert.True(t, g.Generate(src).Must())
		}
	})

	t.Run("InvalidProbability", func(t *testing.T) {
		for _, p := range []float64{-0.1, 1.1, math.NaN()} {
			_, err := Flip(p).Generate(rng.New(1)).Get()
			assert.ErrorIs(t, err, ErrInvalidProbability)
		}
	})

	t.Run("FairCoinSeesBothSides", func(t *testing.T) {
		src := rng.New(123)
		g := Flip(0.5)
		heads := 0
		for range 1000 {
			if g.Generate(src).Must() {
				heads++
			}
		}
		assert.Greater(t, heads, 400)
		assert.Less(t, heads, 600)
	})
}

func TestSampleBernoulli(t *testing.T) {
	t.Run("AllSubsetsAppear", func(t *testing.T) {
		src := rng.New(123)
		g := SampleBernoulli([]string{"x", "y"})
		seen := map[string]int{}
		for range 10000 {
			seen[strings.Join(g.Generate(src).Must(), ",")]++
		}
		require.Len(t, seen, 4)
		for _, subset := range []string{"", "x", "y", "x,y"} {
			assert.Greater(t, seen[subset], 0, "subset %q", subset)
		}
	})

	t.Run("EmptyInputNeverFails", func(t *testing.T) {
		v, err := SampleBernoulli([]string{}).Generate(rng.New(1)).Get()
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("ZeroProbabilityKeepsNothing", func(t *testing.T) {
		src := rng.New(123)
		g := SampleBernoulliP([]int{1, 2, 3}, 0)
		for range 100 {
			assert.Empty(t, g.Generate(src).Must())
		}
	})

	t.Run("UnitProbabilityKeepsEverything", func(t *testing.T) {
		src := rng.New(123)
		g := SampleBernoulliP([]int{1, 2, 3}, 1)
		for range 100 {
			assert.Equal(t, []int{1, 2, 3}, g.Generate(src).Must())
		}
	})

	t.Run("InvalidProbability", func(t *testing.T) {
		_, err := SampleBernoulliP([]int{1}, 1.5).Generate(rng.New(1)).Get()
		assert.ErrorIs(t, err, ErrInvalidProbability)
	})
}
