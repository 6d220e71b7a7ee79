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
	"encoding/json"
	"fmt"
	"io"
)

// JSONEmitter writes each sample as one JSON object per line.
type JSONEmitter struct {
	out io.Writer
}

var _ Emitter = (*JSONEmitter)(nil)

func NewJSONEmitter(out io.Writer) *JSONEmitter {
	return &JSONEmitter{
		out: out,
	}
}

func (e *JSONEmitter) Emit(_ context.Context, s Sample) error {
	jsonData, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(e.out, string(jsonData))
	return nil
}
