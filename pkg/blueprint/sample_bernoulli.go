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

// SampleBernoulliSpec draws a subset of Values, keeping each element
// independently with the given probability. Order is preserved and the
// result may be empty.
type SampleBernoulliSpec struct {
	GeneratorSpec `mapstructure:",squash"`

	Values []any `mapstructure:"values" yaml:"values" json:"values"`
	// Probability of keeping each element.
	Probability float64 `mapstructure:"probability" yaml:"probability" json:"probability"`
}

func newSampleBernoulli(is map[string]any) (gen.Generator[any], error) {
	spec := SampleBernoulliSpec{
		Probability: gen.DefaultSampleProbability,
	}
	if err := decodeSpec("sampleBernoulli", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	if spec.Probability < 0 || spec.Probability > 1 || math.IsNaN(spec.Probability) {
		return gen.Generator[any]{}, fmt.Errorf("sampleBernoulli: invalid probability: %g: %w", spec.Probability, gen.ErrInvalidProbability)
	}
	return gen.Erase(gen.SampleBernoulliP(spec.Values, spec.Probability)), nil
}
