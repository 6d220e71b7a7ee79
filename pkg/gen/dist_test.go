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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelhq/confetti/pkg/rng"
)

func TestNormal(t *testing.T) {
	t.Run("ZeroStdDevDegenerates", func(t *testing.T) {
		src := rng.New(123)
		g := Normal(7.5, 0)
		for range 100 {
			assert.Equal(t, 7.5, g.Generate(src).Must())
		}
	})

	t.Run("NegativeStdDev", func(t *testing.T) {
		_, err := Normal(0, -1).Generate(rng.New(1)).Get()
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestNormalDistribution(t *testing.T) {
	src := rng.New(123)
	g := Normal(5, 2)
	samples := 100000

	var sum, sumSq float64
	for range samples {
		v := g.Generate(src).Must()
		sum += v
		sumSq += v * v
	}

	mean := sum / float64(samples)
	stddev := math.Sqrt(sumSq/float64(samples) - mean*mean)
	if math.Abs(mean-5) > 0.05 {
		t.Errorf("Normal mean = %v, expected approximately 5", mean)
	}
	if math.Abs(stddev-2) > 0.05 {
		t.Errorf("Normal stddev = %v, expected approximately 2", stddev)
	}
}

func TestPoisson(t *testing.T) {
	t.Run("ZeroLambda", func(t *testing.T) {
		src := rng.New(123)
		g := Poisson(0)
		for range 100 {
			assert.Equal(t, 0, g.Generate(src).Must())
		}
	})

	t.Run("NegativeLambda", func(t *testing.T) {
		_, err := Poisson(-10).Generate(rng.New(1)).Get()
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("NonNegativeCounts", func(t *testing.T) {
		src := rng.New(123)
		for _, lambda := range []float64{0.5, 5, 50} {
			g := Poisson(lambda)
			for range 1000 {
				assert.GreaterOrEqual(t, g.Generate(src).Must(), 0)
			}
		}
	})
}

func TestPoissonDistribution(t *testing.T) {
	tests := []struct {
		name      string
		lambda    float64
		tolerance float64
	}{
		{name: "KnuthBranch", lambda: 10, tolerance: 0.5},
		{name: "NormalApproxBranch", lambda: 50, tolerance: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := rng.New(123)
			g := Poisson(tt.lambda)
			samples := 100000

			var sum float64
			for range samples {
				sum += float64(g.Generate(src).Must())
			}

			mean := sum / float64(samples)
			if math.Abs(mean-tt.lambda) > tt.tolerance {
				t.Errorf("Poisson mean = %v, expected approximately %v", mean, tt.lambda)
			}
		})
	}
}
