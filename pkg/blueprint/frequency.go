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

// FrequencySpec picks one of the nested generator specs with probability
// proportional to its weight. A zero-weight option is never picked;
// weights need not sum to one.
type FrequencySpec struct {
	GeneratorSpec `mapstructure:",squash"`

	Options []FrequencyOption `mapstructure:"options" yaml:"options" json:"options"`
}

type FrequencyOption struct {
	Weight float64        `mapstructure:"weight" yaml:"weight" json:"weight"`
	Spec   map[string]any `mapstructure:"spec" yaml:"spec" json:"spec"`
}

func newFrequency(is map[string]any) (gen.Generator[any], error) {
	var spec FrequencySpec
	if err := decodeSpec("frequency", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	if len(spec.Options) == 0 {
		return gen.Generator[any]{}, fmt.Errorf("frequency: %w", gen.ErrEmptyOptions)
	}
	options := make([]gen.Weighted[any], 0, len(spec.Options))
	total := 0.0
	for i, opt := range spec.Options {
		if opt.Weight < 0 || math.IsNaN(opt.Weight) || math.IsInf(opt.Weight, 0) {
			return gen.Generator[any]{}, fmt.Errorf("frequency: option %d: weight %g: %w", i, opt.Weight, gen.ErrInvalidWeight)
		}
		total += opt.Weight
		g, err := Build(opt.Spec)
		if err != nil {
			return gen.Generator[any]{}, fmt.Errorf("frequency: option %d: %w", i, err)
		}
		options = append(options, gen.Weighted[any]{Weight: opt.Weight, Gen: g})
	}
	if total == 0 {
		return gen.Generator[any]{}, fmt.Errorf("frequency: weights sum to zero: %w", gen.ErrInvalidWeight)
	}
	return gen.Frequency(options...), nil
}
