// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"sync"
)

// Backing storage for Text is pooled. Buffers are zeroed and truncated
// on release; oversized buffers are left to the garbage collector so the
// pool holds only small allocations.

const maxPooledTextCap = 1 << 16

var textBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64)
		return &b
	},
}

// acquireTextBuf returns an empty buffer, reusing pooled storage.
func acquireTextBuf() []byte {
	p := textBufPool.Get().(*[]byte)
	return (*p)[:0]
}

// releaseTextBuf zeroes and returns a buffer to the pool.
func releaseTextBuf(b []byte) {
	if cap(b) == 0 || cap(b) > maxPooledTextCap {
		return
	}
	b = b[:cap(b)]
	clear(b)
	b = b[:0]
	textBufPool.Put(&b)
}

// cloneTextBuf copies b into freshly acquired storage.
// The result shares no backing array with b.
func cloneTextBuf(b []byte) []byte {
	return append(acquireTextBuf(), b...)
}

// Text is a growable, heap-backed text buffer with a single owner.
// It is constructed from a string literal, grows through Push, and is
// destroyed by Drop (or by the Scope that tracks it), which returns the
// backing storage to the pool. Move transfers the buffer without
// copying; Clone deep-copies it into an independent owner.
type Text struct {
	h *Owned[[]byte]
}

// NewText creates an owned text buffer holding s.
func NewText(s string) *Text {
	b := append(acquireTextBuf(), s...)
	return &Text{h: OwnReleased(b, releaseTextBuf)}
}

// Push appends s to the buffer in place.
// Panics if the buffer has been consumed or is currently borrowed.
func (t *Text) Push(s string) {
	t.h.Modify(func(b []byte) []byte {
		return append(b, s...)
	})
}

// Len returns the buffer length in bytes.
// Panics if the buffer has been consumed.
func (t *Text) Len() int {
	return len(t.h.Value())
}

// String returns a copy of the buffer contents.
// Panics if the buffer has been consumed.
func (t *Text) String() string {
	return string(t.h.Value())
}

// Move transfers ownership of the buffer to a fresh Text and
// invalidates the receiver. The contents are not copied.
func (t *Text) Move() *Text {
	return &Text{h: t.h.Move()}
}

// Clone returns a second, fully independent buffer with equal contents
// and no shared backing storage. Both owners remain usable.
func (t *Text) Clone() *Text {
	return &Text{h: t.h.CloneWith(cloneTextBuf)}
}

// Drop consumes the buffer and returns its storage to the pool.
func (t *Text) Drop() {
	t.h.Drop()
}

// Live reports whether the buffer still owns its storage.
func (t *Text) Live() bool {
	return t.h.Live()
}

// Borrow opens a non-owning view onto the buffer.
// While the view is outstanding the buffer cannot be moved, dropped,
// or pushed to.
func (t *Text) Borrow() *TextRef {
	return &TextRef{ref: t.h.Borrow()}
}

// TextRef is a borrowed, read-only view onto a Text.
type TextRef struct {
	ref *Ref[[]byte]
}

// Len returns the viewed buffer's length in bytes.
func (v *TextRef) Len() int {
	return len(v.ref.Value())
}

// String returns a copy of the viewed buffer's contents.
func (v *TextRef) String() string {
	return string(v.ref.Value())
}

// End returns the borrow to the owner. Panics on reuse.
func (v *TextRef) End() {
	v.ref.End()
}
