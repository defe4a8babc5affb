// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Fixed-size heterogeneous records. Size and field types are fixed at
// construction; the fields are the positional accessors and Unpack
// destructures into named bindings. A record read both ways yields the
// same values.

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Unpack destructures the pair into its two fields.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.Fst, p.Snd
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Trd C
}

// Unpack destructures the triple into its three fields.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.Fst, t.Snd, t.Trd
}
