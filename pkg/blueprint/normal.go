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

package blueprint

import (
	"fmt"
	"math"

	"github.com/kestrelhq/confetti/pkg/gen"
)

// NormalSpec draws from a normal distribution.
type NormalSpec struct {
	GeneratorSpec `mapstructure:",squash"`

	// Mean is the center of the distribution.
	Mean float64 `mapstructure:"mean" yaml:"mean" json:"mean"`
	// StdDev is the standard deviation. Zero degenerates to Mean on
	// every draw.
	StdDev float64 `mapstructure:"stdDev" yaml:"stdDev" json:"stdDev"`
}

func newNormal(is map[string]any) (gen.Generator[any], error) {
	var spec NormalSpec
	if err := decodeSpec("normal", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	if math.IsNaN(spec.Mean) || math.IsInf(spec.Mean, 0) {
		return gen.Generator[any]{}, fmt.Errorf("normal: invalid mean: %g: %w", spec.Mean, gen.ErrInvalidRange)
	}
	if spec.StdDev < 0 || math.IsNaN(spec.StdDev) || math.IsInf(spec.StdDev, 0) {
		return gen.Generator[any]{}, fmt.Errorf("normal: invalid stdDev: %g: %w", spec.StdDev, gen.ErrInvalidRange)
	}
	return gen.Erase(gen.Normal(spec.Mean, spec.StdDev)), nil
}
