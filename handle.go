// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"sync/atomic"
)

// Consume states and borrow accounting share one machine word.
// The low two bits hold the consume state; the remaining bits count
// outstanding borrows. A live, unborrowed handle is exactly zero, so
// consumption is a single compare-and-swap from zero.
const (
	stateLive    uintptr = 0
	stateMoved   uintptr = 1
	stateDropped uintptr = 2
	stateMask    uintptr = 3
	borrowUnit   uintptr = 4
)

// consumedMessage panics text for operations on a consumed handle.
// Extracted as a noinline function so that the hot-path methods remain
// inlineable.
//
//go:noinline
func consumedMessage(verb string, state uintptr) string {
	if state == stateMoved {
		return "own: " + verb + " of moved value"
	}
	return "own: " + verb + " of dropped value"
}

// Owned is a handle over a heap-backed value with exactly one owner.
// The handle may be consumed at most once, by Move or Drop; after that,
// every access through it panics (Value, Move, Drop) or reports failure
// (TryValue, TryMove). Consumption is exactly-one-winner under races.
//
// Owned models affine resource usage: the discipline a compiler with
// move checking would enforce statically is checked here at runtime.
type Owned[T any] struct {
	word    atomic.Uintptr
	value   T
	release func(T)
}

// Own creates an owning handle over v.
func Own[T any](v T) *Owned[T] {
	return &Owned[T]{value: v}
}

// OwnReleased creates an owning handle whose release hook runs exactly
// once, when the handle is dropped. Handles produced by Move and
// CloneWith inherit the hook.
func OwnReleased[T any](v T, release func(T)) *Owned[T] {
	return &Owned[T]{value: v, release: release}
}

// Value returns the owned value.
// Panics if the handle has been moved or dropped.
func (o *Owned[T]) Value() T {
	if s := o.word.Load() & stateMask; s != stateLive {
		panic(consumedMessage("use", s))
	}
	return o.value
}

// TryValue returns the owned value and true, or (zero, false) if the
// handle has been consumed.
func (o *Owned[T]) TryValue() (T, bool) {
	if o.word.Load()&stateMask != stateLive {
		var zero T
		return zero, false
	}
	return o.value, true
}

// consume transitions the handle from live-and-unborrowed to the given
// consumed state. Exactly one consumer wins; everyone else panics with
// a message naming what went wrong.
func (o *Owned[T]) consume(to uintptr, verb string) {
	if o.word.CompareAndSwap(stateLive, to) {
		return
	}
	if s := o.word.Load() & stateMask; s != stateLive {
		panic(consumedMessage("use", s))
	}
	panic("own: " + verb + " while borrowed")
}

// Move transfers ownership to a fresh handle and invalidates the
// receiver. The value is not copied; only the right to use it moves.
// Panics if the handle is already consumed or currently borrowed.
func (o *Owned[T]) Move() *Owned[T] {
	o.consume(stateMoved, "moved")
	moved := &Owned[T]{value: o.value, release: o.release}
	var zero T
	o.value = zero
	o.release = nil
	return moved
}

// TryMove attempts to transfer ownership.
// Returns (handle, true) on success, or (nil, false) if the handle is
// consumed or borrowed.
func (o *Owned[T]) TryMove() (*Owned[T], bool) {
	if !o.word.CompareAndSwap(stateLive, stateMoved) {
		return nil, false
	}
	moved := &Owned[T]{value: o.value, release: o.release}
	var zero T
	o.value = zero
	o.release = nil
	return moved, true
}

// CloneWith returns a second, fully independent owner whose value is
// dup applied to the current one. The receiver stays live; the clone
// inherits the release hook. dup must produce content that shares no
// backing storage with its argument.
func (o *Owned[T]) CloneWith(dup func(T) T) *Owned[T] {
	v := o.Value()
	return &Owned[T]{value: dup(v), release: o.release}
}

// Modify updates the value in place through the handle and returns the
// new value. Panics if the handle is consumed or currently borrowed:
// a view open for reading excludes mutation.
func (o *Owned[T]) Modify(f func(T) T) T {
	w := o.word.Load()
	if s := w & stateMask; s != stateLive {
		panic(consumedMessage("use", s))
	}
	if w >= borrowUnit {
		panic("own: modified while borrowed")
	}
	o.value = f(o.value)
	return o.value
}

// Drop consumes the handle and runs its release hook, returning the
// backing resource. Panics on a second drop, on a drop after move, or
// while a borrow is outstanding.
func (o *Owned[T]) Drop() {
	o.consume(stateDropped, "dropped")
	if o.release != nil {
		o.release(o.value)
	}
	var zero T
	o.value = zero
	o.release = nil
}

// Live reports whether the handle still owns its value.
func (o *Owned[T]) Live() bool {
	return o.word.Load()&stateMask == stateLive
}

// Borrowed reports whether any view on the handle is outstanding.
func (o *Owned[T]) Borrowed() bool {
	return o.word.Load() >= borrowUnit
}
