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
	"github.com/kestrelhq/confetti/pkg/gen"
)

func newUUID(is map[string]any) (gen.Generator[any], error) {
	var spec GeneratorSpec
	if err := decodeSpec("uuid", is, &spec); err != nil {
		return gen.Generator[any]{}, err
	}
	return gen.Erase(gen.UUID()), nil
}
