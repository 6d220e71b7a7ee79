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

// ChoiceSpec picks one of the nested generator specs uniformly on each
// draw, then draws from it.
type ChoiceSpec struct {
	GeneratorSpec `mapstructure:",squash"`

	Options []map[string]any `mapstructure:"options" yaml:"options" json:"options"`
}

func newChoice(is map[string]any) (gen.Generator[any], error) {
	var spec ChoiceSpec
	if err := decodeSpec("choice", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	if len(spec.Options) == 0 {
		return gen.Generator[any]{}, fmt.Errorf("choice: %w", gen.ErrEmptyOptions)
	}
	options := make([]gen.Generator[any], 0, len(spec.Options))
	for i, opt := range spec.Options {
		g, err := Build(opt)
		if err != nil {
			return gen.Generator[any]{}, fmt.Errorf("choice: option %d: %w", i, err)
		}
		options = append(options, g)
	}
	return gen.Choice(options...), nil
}
