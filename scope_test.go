// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/own"
)

func TestScopeDropsInReverseOrder(t *testing.T) {
	var order []string
	release := func(v string) { order = append(order, v) }

	sc := own.NewScope()
	own.Track(sc, own.OwnReleased("a", release))
	own.Track(sc, own.OwnReleased("b", release))
	own.Track(sc, own.OwnReleased("c", release))
	sc.End()

	want := []string{"c", "b", "a"}
	if !slices.Equal(order, want) {
		t.Fatalf("got %v, want %v", order, want)
	}
}

func TestScopeSkipsConsumedHandles(t *testing.T) {
	releases := 0
	release := func(int) { releases++ }

	sc := own.NewScope()
	kept := own.Track(sc, own.OwnReleased(1, release))
	moved := own.Track(sc, own.OwnReleased(2, release))

	// Ownership leaves the scope; End must not double-release it
	escaped := moved.Move()
	sc.End()

	if releases != 1 {
		t.Fatalf("got %d releases, want 1", releases)
	}
	if kept.Live() {
		t.Fatal("expected tracked handle to be dropped at End")
	}
	if !escaped.Live() {
		t.Fatal("expected moved-out handle to survive End")
	}
	escaped.Drop()
}

func TestScopePanicOnEndTwice(t *testing.T) {
	sc := own.NewScope()
	sc.End()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on second End")
		}
		if s, ok := r.(string); !ok || s != "own: scope ended twice" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	sc.End()
}

func TestScopePanicOnTrackAfterEnd(t *testing.T) {
	sc := own.NewScope()
	sc.End()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on Track after End")
		}
		if s, ok := r.(string); !ok || s != "own: track on ended scope" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	own.Track(sc, own.Own(1))
}

func TestScopeEmptyEnd(t *testing.T) {
	sc := own.NewScope()
	sc.End()
}

func TestWithin(t *testing.T) {
	var h *own.Owned[int]

	own.Within(func(sc *own.Scope) {
		h = own.Track(sc, own.Own(9))
		if got := h.Value(); got != 9 {
			t.Fatalf("got %d, want 9", got)
		}
	})

	if h.Live() {
		t.Fatal("expected tracked handle to be dropped when Within returns")
	}
}

func TestWithinEndsOnPanic(t *testing.T) {
	released := false
	var h *own.Owned[int]

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the body panic to propagate")
			}
		}()
		own.Within(func(sc *own.Scope) {
			h = own.Track(sc, own.OwnReleased(1, func(int) { released = true }))
			panic("body failure")
		})
	}()

	if !released {
		t.Fatal("expected the scope to release its handles despite the panic")
	}
	if h.Live() {
		t.Fatal("expected tracked handle to be consumed")
	}
}
