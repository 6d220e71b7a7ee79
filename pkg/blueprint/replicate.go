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

// ReplicateSpec draws a fixed-length list from the nested spec. When
// MaxCount is set, the length itself is drawn uniformly from
// [Count, MaxCount].
type ReplicateSpec struct {
	GeneratorSpec `mapstructure:",squash"`

	// Count is the list length, or the lower bound when MaxCount is set.
	Count int `mapstructure:"count" yaml:"count" json:"count"`
	// MaxCount, when positive, makes the length uniform in [Count, MaxCount].
	MaxCount int `mapstructure:"maxCount" yaml:"maxCount" json:"maxCount"`
	// Of is the spec of the element generator.
	Of map[string]any `mapstructure:"of" yaml:"of" json:"of"`
}

func newReplicate(is map[string]any) (gen.Generator[any], error) {
	var spec ReplicateSpec
	if err := decodeSpec("replicate", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	if spec.Count < 0 {
		return gen.Generator[any]{}, fmt.Errorf("replicate: count %d: %w", spec.Count, gen.ErrInvalidRange)
	}
	if spec.MaxCount != 0 && spec.MaxCount < spec.Count {
		return gen.Generator[any]{}, fmt.Errorf("replicate: maxCount %d < count %d: %w", spec.MaxCount, spec.Count, gen.ErrInvalidRange)
	}
	element, err := Build(spec.Of)
	if err != nil {
		return gen.Generator[any]{}, fmt.Errorf("replicate: %w", err)
	}
	if spec.MaxCount != 0 {
		return gen.Erase(gen.ReplicateBetween(spec.Count, spec.MaxCount, element)), nil
	}
	return gen.Erase(gen.Replicate(spec.Count, element)), nil
}
