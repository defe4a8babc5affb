// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"fmt"
	"strings"
)

// Op is the interface for defunctionalized binding operations.
// Implementations carry the data needed to execute one step of a
// [Program]. Dispatch uses type switches, not tags — Op is a pure
// marker interface.
type Op interface {
	op() // unexported marker method
}

// LetOp introduces a new binding holding an owned text buffer built
// from a literal.
type LetOp struct {
	// Name is the binding being introduced.
	Name string

	// Lit is the initial buffer content.
	Lit string
}

func (LetOp) op() {}

func (o LetOp) String() string { return fmt.Sprintf("let %s = %q", o.Name, o.Lit) }

// MoveOp transfers ownership from Src to a new binding Dst.
// Src is consumed: any later use of it is a vet error.
type MoveOp struct {
	// Dst is the binding receiving ownership.
	Dst string

	// Src is the binding giving up ownership.
	Src string
}

func (MoveOp) op() {}

func (o MoveOp) String() string { return fmt.Sprintf("move %s <- %s", o.Dst, o.Src) }

// CloneOp deep-copies Src into a new binding Dst.
// Src stays live and usable afterwards.
type CloneOp struct {
	// Dst is the binding receiving the copy.
	Dst string

	// Src is the binding being copied.
	Src string
}

func (CloneOp) op() {}

func (o CloneOp) String() string { return fmt.Sprintf("clone %s <- %s", o.Dst, o.Src) }

// ReadOp borrows a binding and records its content on the trace.
// The binding stays live afterwards.
type ReadOp struct {
	// Name is the binding being read.
	Name string
}

func (ReadOp) op() {}

func (o ReadOp) String() string { return fmt.Sprintf("read %s", o.Name) }

// DropOp releases a binding early. Any later use of it is a vet error.
type DropOp struct {
	// Name is the binding being released.
	Name string
}

func (DropOp) op() {}

func (o DropOp) String() string { return fmt.Sprintf("drop %s", o.Name) }

// Program is a straight-line sequence of binding operations over owned
// text buffers. Programs are data: they can be inspected, vetted for
// ownership discipline, and only then executed. [Program.Run] refuses
// to execute any operation of a program that fails [Program.Vet], so
// an ownership violation is reported before the first side effect
// instead of midway through.
type Program struct {
	ops []Op
}

// NewProgram returns an empty program.
// Operations are appended with the chainable builder methods:
//
//	p := own.NewProgram().
//		Let("s1", "hello").
//		Move("s2", "s1").
//		Read("s2")
func NewProgram() *Program {
	return &Program{}
}

// Let appends an operation introducing binding name with content lit.
func (p *Program) Let(name, lit string) *Program {
	p.ops = append(p.ops, LetOp{Name: name, Lit: lit})
	return p
}

// Move appends an operation transferring ownership from src to dst.
func (p *Program) Move(dst, src string) *Program {
	p.ops = append(p.ops, MoveOp{Dst: dst, Src: src})
	return p
}

// Clone appends an operation deep-copying src into dst.
func (p *Program) Clone(dst, src string) *Program {
	p.ops = append(p.ops, CloneOp{Dst: dst, Src: src})
	return p
}

// Read appends an operation recording the content of name on the trace.
func (p *Program) Read(name string) *Program {
	p.ops = append(p.ops, ReadOp{Name: name})
	return p
}

// Drop appends an operation releasing name early.
func (p *Program) Drop(name string) *Program {
	p.ops = append(p.ops, DropOp{Name: name})
	return p
}

// Ops returns a copy of the operation sequence in program order.
func (p *Program) Ops() []Op {
	out := make([]Op, len(p.ops))
	copy(out, p.ops)
	return out
}

// Len reports the number of operations.
func (p *Program) Len() int {
	return len(p.ops)
}

// String renders the program as one line per operation.
func (p *Program) String() string {
	var sb strings.Builder
	for i, op := range p.ops {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%v", op)
	}
	return sb.String()
}

// Run vets the program and, only if it is clean, executes it.
// A vet failure is returned as a [*VetError] and nothing executes:
// the trace stays untouched and no buffer is allocated. A clean
// program runs every operation inside a fresh scope, so all buffers
// still owned at the end are released before Run returns. Read
// operations append their lines to tr.
func (p *Program) Run(tr *Trace) error {
	if err := p.Vet(); err != nil {
		return err
	}
	Within(func(sc *Scope) {
		store := make(map[string]*Text, len(p.ops))
		for _, op := range p.ops {
			switch o := op.(type) {
			case LetOp:
				store[o.Name] = Track(sc, NewText(o.Lit))
			case MoveOp:
				store[o.Dst] = Track(sc, store[o.Src].Move())
			case CloneOp:
				store[o.Dst] = Track(sc, store[o.Src].Clone())
			case ReadOp:
				ref := store[o.Name].Borrow()
				tr.Printf("%s = %s", o.Name, ref.String())
				ref.End()
			case DropOp:
				store[o.Name].Drop()
			default:
				panic("own: unknown op type")
			}
		}
	})
	return nil
}
