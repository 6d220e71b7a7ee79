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

// Package emitter writes drawn samples to an output sink, one sample
// per line.
package emitter

import (
	"context"
)

// Sample is one drawn value attributed to its stream and draw index.
type Sample struct {
	Index  int    `json:"index"`
	Stream string `json:"stream"`
	Value  any    `json:"value"`
}

type Emitter interface {
	Emit(ctx context.Context, s Sample) error
}
