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

package gen

import (
	"github.com/google/uuid"

	"github.com/kestrelhq/confetti/pkg/rng"
)

// UUID yields RFC 4122 version 4 UUIDs drawn from the source, so a seeded
// run reproduces the same identifiers.
func UUID() Generator[uuid.UUID] {
	return From(func(src rng.Source) (uuid.UUID, error) {
		var id uuid.UUID
		for i := range id {
			id[i] = byte(src.IntN(256))
		}
		id[6] = (id[6] & 0x0f) | 0x40
		id[8] = (id[8] & 0x3f) | 0x80
		return id, nil
	})
}
