// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"sync/atomic"
)

// Ref is a non-owning view onto an owned value. A view is opened with
// [Owned.Borrow] and returned with End; while it is outstanding, the
// owner refuses to Move, Drop, or Modify, so the view can never outlive
// the value it reads.
//
// End may be called at most once; subsequent attempts panic (End) or
// return false (TryEnd).
type Ref[T any] struct {
	used  atomic.Uintptr
	owner *Owned[T]
}

// Borrow opens a non-owning view onto the owned value.
// Panics if the handle has been moved or dropped.
func (o *Owned[T]) Borrow() *Ref[T] {
	for {
		w := o.word.Load()
		if s := w & stateMask; s != stateLive {
			panic(consumedMessage("borrow", s))
		}
		if o.word.CompareAndSwap(w, w+borrowUnit) {
			return &Ref[T]{owner: o}
		}
	}
}

// endBorrow returns one outstanding borrow.
func (o *Owned[T]) endBorrow() {
	o.word.Add(^(borrowUnit - 1))
}

// Value reads through the view.
// The owner is guaranteed live while the view is outstanding.
// Panics if the view has already been ended.
func (r *Ref[T]) Value() T {
	if r.used.Load() != 0 {
		panic("own: use of ended borrow")
	}
	return r.owner.value
}

// End returns the borrow to the owner.
// Panics if the view has already been ended.
func (r *Ref[T]) End() {
	if r.used.Add(1) != 1 {
		panic("own: borrow ended twice")
	}
	r.owner.endBorrow()
}

// TryEnd attempts to return the borrow.
// Returns true on success, or false if the view was already ended.
func (r *Ref[T]) TryEnd() bool {
	if r.used.Add(1) != 1 {
		return false
	}
	r.owner.endBorrow()
	return true
}

// Borrowing opens a view on o, applies f to the borrowed value, and
// returns the borrow even if f panics.
func Borrowing[T, R any](o *Owned[T], f func(T) R) R {
	ref := o.Borrow()
	defer ref.End()
	return f(ref.Value())
}
