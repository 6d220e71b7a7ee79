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

// FlipSpec draws booleans that are true with the given probability.
type FlipSpec struct {
	GeneratorSpec `mapstructure:",squash"`

	// Probability of drawing true. Defaults to a fair coin.
	Probability float64 `mapstructure:"probability" yaml:"probability" json:"probability"`
}

func newFlip(is map[string]any) (gen.Generator[any], error) {
	spec := FlipSpec{
		Probability: 0.5,
	}
	if err := decodeSpec("flip", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	if spec.Probability < 0 || spec.Probability > 1 || math.IsNaN(spec.Probability) {
		return gen.Generator[any]{}, fmt.Errorf("flip: invalid probability: %g: %w", spec.Probability, gen.ErrInvalidProbability)
	}
	return gen.Erase(gen.Flip(spec.Probability)), nil
}
