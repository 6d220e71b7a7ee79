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

// Package gen builds composable random value generators. A Generator[A]
// describes how to draw values of type A from a splittable random source;
// combinators assemble small generators into larger ones, and drawing is
// deferred until Generate is called with a source. Failures travel in
// Result values rather than panics, and a draw is fully determined by the
// generator and the state of the source it is given.
package gen

import (
	"errors"

	"github.com/kestrelhq/confetti/pkg/rng"
)

// Generator produces random values of type A. Generators are immutable:
// combinators build new generators from existing ones and never mutate
// their constituents. Build once, draw many times.
type Generator[A any] struct {
	n *node
}

// node is the erased evaluation tree. A node is either a leaf that draws a
// value directly, or a bind of an inner node and a continuation producing
// the next node from the inner node's value.
type node struct {
	leaf  func(src rng.Source) (any, error)
	inner *node
	cont  func(v any) *node
}

// From wraps a drawing function as a Generator. The function reports
// failures as errors, never panics, and must not retain src beyond the
// call.
func From[A any](f func(src rng.Source) (A, error)) Generator[A] {
	return Generator[A]{n: &node{leaf: func(src rng.Source) (any, error) {
		return f(src)
	}}}
}

// Const returns a generator that always yields v and consumes no
// randomness.
func Const[A any](v A) Generator[A] {
	return From(func(rng.Source) (A, error) {
		return v, nil
	})
}

// Fail returns a generator that always fails with err.
func Fail[A any](err error) Generator[A] {
	if err == nil {
		err = errors.New("unspecified failure")
	}
	return From(func(rng.Source) (A, error) {
		var zero A
		return zero, err
	})
}

// Map returns a generator that applies f to each value g yields. A failure
// from g is propagated unchanged and f is not invoked.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return Generator[B]{n: &node{
		inner: g.n,
		cont: func(v any) *node {
			b := f(typed[A](v))
			return &node{leaf: func(rng.Source) (any, error) {
				return b, nil
			}}
		},
	}}
}

// Bind returns a generator that runs g, feeds its value to f, and runs the
// generator f returns against the same source. A failure from g is
// propagated unchanged and f is not invoked.
//
// Bind chains evaluate iteratively: a generator that recurses through f
// does not grow the call stack with its recursion depth. Generators nested
// structurally at construction time still consume stack while being built,
// so unbounded recursion belongs inside f, not inside constructor calls.
func Bind[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return Generator[B]{n: &node{
		inner: g.n,
		cont: func(v any) *node {
			return f(typed[A](v)).n
		},
	}}
}

// Erase converts a typed generator to Generator[any], for registries and
// other places that hold generators of mixed element types.
func Erase[A any](g Generator[A]) Generator[any] {
	return Generator[any]{n: g.n}
}

// Generate draws one value from g using src. Every failure is reported in
// the Result; Generate does not panic. Drawing from the zero-value
// Generator fails with ErrNilGenerator.
func (g Generator[A]) Generate(src rng.Source) Result[A] {
	v, err := eval(g.n, src)
	if err != nil {
		return Err[A](err)
	}
	return Ok(typed[A](v))
}

// eval walks the node tree with an explicit continuation stack, so bind
// depth costs heap, not call stack. Failures short-circuit: pending
// continuations are abandoned unrun.
func eval(n *node, src rng.Source) (any, error) {
	var conts []func(any) *node
	for {
		for n != nil && n.inner != nil {
			conts = append(conts, n.cont)
			n = n.inner
		}
		if n == nil || n.leaf == nil {
			return nil, ErrNilGenerator
		}
		v, err := n.leaf(src)
		if err != nil {
			return nil, err
		}
		if len(conts) == 0 {
			return v, nil
		}
		n = conts[len(conts)-1](v)
		conts = conts[:len(conts)-1]
	}
}

// typed recovers the value an evaluation produced. A nil comes back as the
// zero value, which is only reachable when A is an interface or reference
// type.
func typed[A any](v any) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
