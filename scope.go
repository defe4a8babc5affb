// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"sync/atomic"
)

// Handle is the consumable surface a Scope manages: anything that can
// report liveness and be dropped. Both [Owned] and [Text] satisfy it.
type Handle interface {
	Live() bool
	Drop()
}

// Scope releases tracked handles deterministically when it ends.
// Handles are dropped in reverse tracking order, mirroring the order
// stack-scoped values are destroyed. A handle whose ownership was
// transferred out (or that was dropped manually) before End is skipped:
// release follows the value's current owner, not its birthplace.
//
// End may be called at most once.
type Scope struct {
	ended   atomic.Uintptr
	tracked []Handle
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Track registers a handle for release when the scope ends and returns
// it unchanged. Panics if the scope has already ended.
func Track[H Handle](sc *Scope, h H) H {
	if sc.ended.Load() != 0 {
		panic("own: track on ended scope")
	}
	sc.tracked = append(sc.tracked, h)
	return h
}

// End drops the still-live tracked handles in reverse tracking order.
// Panics if called twice. A tracked handle with an outstanding borrow
// makes End panic through Drop: the borrow would outlive its owner.
func (sc *Scope) End() {
	if sc.ended.Add(1) != 1 {
		panic("own: scope ended twice")
	}
	for i := len(sc.tracked) - 1; i >= 0; i-- {
		if h := sc.tracked[i]; h.Live() {
			h.Drop()
		}
	}
	sc.tracked = nil
}

// Within runs f with a fresh scope and ends the scope when f returns,
// even if f panics.
func Within(f func(*Scope)) {
	sc := NewScope()
	defer sc.End()
	f(sc)
}
