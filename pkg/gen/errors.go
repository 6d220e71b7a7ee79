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

import "errors"

// Generation failure sentinels. Combinators that annotate a failure wrap
// it with %w, so errors.Is sees through to these.
var (
	ErrEmptyOptions       = errors.New("empty options")
	ErrInvalidRange       = errors.New("invalid range")
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrInvalidProbability = errors.New("invalid probability")
	ErrNilGenerator       = errors.New("nil generator")
)
