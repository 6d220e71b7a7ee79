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

// Result is the outcome of drawing from a generator: a value or the
// failure that stopped generation. Failures travel as values; no
// combinator raises one as a panic.
type Result[A any] struct {
	value A
	err   error
}

// Ok returns a successful Result holding value.
func Ok[A any](value A) Result[A] {
	return Result[A]{value: value}
}

// Err returns a failed Result carrying err.
func Err[A any](err error) Result[A] {
	return Result[A]{err: err}
}

// Get returns the drawn value and the failure, if any.
func (r Result[A]) Get() (A, error) {
	return r.value, r.err
}

// Must returns the drawn value, panicking on failure. Intended for setup
// code where a failed draw should abort the run.
func (r Result[A]) Must() A {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}
