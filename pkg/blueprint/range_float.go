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

// FloatRangeSpec draws uniform floats from [Low, High). High is never
// produced unless the bounds are equal, in which case every draw yields
// Low.
type FloatRangeSpec struct {
	GeneratorSpec `mapstructure:",squash"`

	Low  float64 `mapstructure:"low" yaml:"low" json:"low"`
	High float64 `mapstructure:"high" yaml:"high" json:"high"`
}

func newFloatRange(is map[string]any) (gen.Generator[any], error) {
	var spec FloatRangeSpec
	if err := decodeSpec("floatRange", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	if math.IsNaN(spec.Low) || math.IsNaN(spec.High) || spec.Low > spec.High {
		return gen.Generator[any]{}, fmt.Errorf("floatRange: low %g > high %g: %w", spec.Low, spec.High, gen.ErrInvalidRange)
	}
	return gen.Erase(gen.Float64Range(spec.Low, spec.High)), nil
}
