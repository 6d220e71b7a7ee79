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

	"github.com/kestrelhq/confetti/pkg/gen"
)

// IntRangeSpec draws uniform integers from [Low, High]. Both ends are
// included.
type IntRangeSpec struct {
	GeneratorSpec `mapstructure:",squash"`

	Low  int `mapstructure:"low" yaml:"low" json:"low"`
	High int `mapstructure:"high" yaml:"high" json:"high"`
}

func newIntRange(is map[string]any) (gen.Generator[any], error) {
	var spec IntRangeSpec
	if err := decodeSpec("intRange", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	if spec.Low > spec.High {
		return gen.Generator[any]{}, fmt.Errorf("intRange: low %d > high %d: %w", spec.Low, spec.High, gen.ErrInvalidRange)
	}
	return gen.Erase(gen.IntRange(spec.Low, spec.High)), nil
}
