// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "fmt"

// bindState tracks what the vet walk knows about one binding.
type bindState uint8

const (
	bindLive bindState = iota
	bindMoved
	bindDropped
)

func (s bindState) String() string {
	switch s {
	case bindLive:
		return "live"
	case bindMoved:
		return "moved"
	case bindDropped:
		return "dropped"
	default:
		return "invalid"
	}
}

// VetError reports the first ownership violation found in a program.
// Index is the zero-based position of the offending operation.
type VetError struct {
	// Index is the position of the offending operation.
	Index int

	// Op is the offending operation.
	Op Op

	// Binding is the name the violation is about.
	Binding string

	// Reason describes the violation.
	Reason string
}

func (e *VetError) Error() string {
	return fmt.Sprintf("own: op %d (%v): %s: %s", e.Index, e.Op, e.Binding, e.Reason)
}

// Vet checks the program for ownership violations without executing
// anything. It walks the operations in order, tracking each binding as
// live, moved or dropped, and reports the first violation found:
//
//   - reading, moving, cloning or dropping a name that was never bound
//   - using a binding after it was moved from
//   - using a binding after it was dropped
//   - binding a name that is already bound
//
// A nil result means [Program.Run] will execute without ownership
// panics.
func (p *Program) Vet() error {
	states := make(map[string]bindState, len(p.ops))
	for i, op := range p.ops {
		switch o := op.(type) {
		case LetOp:
			if err := vetBind(i, op, o.Name, states); err != nil {
				return err
			}
			states[o.Name] = bindLive
		case MoveOp:
			if err := vetUse(i, op, o.Src, states); err != nil {
				return err
			}
			if err := vetBind(i, op, o.Dst, states); err != nil {
				return err
			}
			states[o.Src] = bindMoved
			states[o.Dst] = bindLive
		case CloneOp:
			if err := vetUse(i, op, o.Src, states); err != nil {
				return err
			}
			if err := vetBind(i, op, o.Dst, states); err != nil {
				return err
			}
			states[o.Dst] = bindLive
		case ReadOp:
			if err := vetUse(i, op, o.Name, states); err != nil {
				return err
			}
		case DropOp:
			if err := vetUse(i, op, o.Name, states); err != nil {
				return err
			}
			states[o.Name] = bindDropped
		default:
			panic("own: unknown op type")
		}
	}
	return nil
}

// vetUse checks that name is bound and still live.
func vetUse(i int, op Op, name string, states map[string]bindState) error {
	s, ok := states[name]
	if !ok {
		return &VetError{Index: i, Op: op, Binding: name, Reason: "unknown binding"}
	}
	if s != bindLive {
		return &VetError{Index: i, Op: op, Binding: name, Reason: fmt.Sprintf("use of %s value", s)}
	}
	return nil
}

// vetBind checks that name is not already bound.
// Shadowing is not supported: a moved-from or dropped name stays taken.
func vetBind(i int, op Op, name string, states map[string]bindState) error {
	if _, ok := states[name]; ok {
		return &VetError{Index: i, Op: op, Binding: name, Reason: "rebinding of existing binding"}
	}
	return nil
}
