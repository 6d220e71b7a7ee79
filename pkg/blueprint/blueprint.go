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

// Package blueprint compiles declarative generator specs, typically
// loaded from YAML, into runnable generators. A spec is a map whose
// "type" key selects the generator kind; the remaining keys configure
// that kind. Composite kinds carry nested specs, so a whole generator
// tree can be described in one document.
package blueprint

import (
	"errors"
	"fmt"

	"github.com/kestrelhq/confetti/pkg/config"
	"github.com/kestrelhq/confetti/pkg/gen"
)

// Custom error types
var (
	ErrMissingSpec   = errors.New("missing generator spec")
	ErrMissingType   = errors.New("missing type in generator spec")
	ErrNonStringType = errors.New("type in generator spec is not a string")
	ErrUnknownType   = errors.New("unknown generator type")
)

type GeneratorSpec struct {
	Type string `mapstructure:"type" yaml:"type" json:"type"`
}

type DecodeError struct {
	Kind string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode %s generator spec: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Build compiles spec into a generator. Misconfigurations are reported
// here, before any value is drawn.
func Build(spec map[string]any) (gen.Generator[any], error) {
	if spec == nil {
		return gen.Generator[any]{}, ErrMissingSpec
	}
	kindAny, ok := spec["type"]
	if !ok {
		return gen.Generator[any]{}, ErrMissingType
	}
	kind, ok := kindAny.(string)
	if !ok {
		return gen.Generator[any]{}, ErrNonStringType
	}
	switch kind {
	case "constant":
		return newConstant(spec)
	case "intRange":
		return newIntRange(spec)
	case "floatRange":
		return newFloatRange(spec)
	case "normal":
		return newNormal(spec)
	case "poisson":
		return newPoisson(spec)
	case "flip":
		return newFlip(spec)
	case "pickOne":
		return newPickOne(spec)
	case "sampleBernoulli":
		return newSampleBernoulli(spec)
	case "choice":
		return newChoice(spec)
	case "frequency":
		return newFrequency(spec)
	case "replicate":
		return newReplicate(spec)
	case "uuid":
		return newUUID(spec)
	default:
		return gen.Generator[any]{}, fmt.Errorf("%w: %s", ErrUnknownType, kind)
	}
}

func decodeSpec(kind string, is map[string]any, out any) error {
	decoder, err := config.NewMapstructureDecoder(out)
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(is); err != nil {
		return &DecodeError{Kind: kind, Err: err}
	}
	return nil
}
