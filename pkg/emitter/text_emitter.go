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

package emitter

import (
	"context"
	"fmt"
	"io"
)

// TextEmitter writes samples in a human-readable line format, meant for
// eyeballing a stream rather than machine consumption.
type TextEmitter struct {
	out io.Writer
}

var _ Emitter = (*TextEmitter)(nil)

func NewTextEmitter(out io.Writer) *TextEmitter {
	return &TextEmitter{
		out: out,
	}
}

func (e *TextEmitter) Emit(_ context.Context, s Sample) error {
	_, err := fmt.Fprintf(e.out, "%s[%d] = %v\n", s.Stream, s.Index, s.Value)
	return err
}
