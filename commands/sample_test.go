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

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/confetti/pkg/emitter"
)

func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestSample(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(`
seed: 42
count: 3
streams:
  - name: latency
    spec:
      type: floatRange
      low: 10
      high: 30
`), 0o644))

	t.Run("WritesJSONLines", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Sample(testCommand(t), []string{fname}, &buf))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)

		var s emitter.Sample
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &s))
		assert.Equal(t, 0, s.Index)
		assert.Equal(t, "latency", s.Stream)
	})

	t.Run("Deterministic", func(t *testing.T) {
		var first, second bytes.Buffer
		require.NoError(t, Sample(testCommand(t), []string{fname}, &first))
		require.NoError(t, Sample(testCommand(t), []string{fname}, &second))
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("format: xml\nstreams:\n  - name: a\n    spec:\n      type: uuid\n"), 0o644))
		var buf bytes.Buffer
		err := Sample(testCommand(t), []string{bad}, &buf)
		assert.ErrorContains(t, err, "unknown output format")
	})
}
