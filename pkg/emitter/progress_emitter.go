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

// ProgressEmitter writes an in-place progress line per sample. It is
// meant for a terminal on stderr while the samples themselves go to
// another emitter.
type ProgressEmitter struct {
	out   io.Writer
	total int
	seen  int
}

var _ Emitter = (*ProgressEmitter)(nil)

// NewProgressEmitter reports progress toward total samples.
func NewProgressEmitter(out io.Writer, total int) *ProgressEmitter {
	return &ProgressEmitter{
		out:   out,
		total: total,
	}
}

func (e *ProgressEmitter) Emit(_ context.Context, _ Sample) error {
	e.seen++
	percent := float64(e.seen) / float64(e.total) * 100
	fmt.Fprintf(e.out, "Sample %d of %d %.2f%%\r", e.seen, e.total, percent)
	return nil
}
