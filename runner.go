// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"fmt"
	"io"
	"slices"
)

// Routine is one named demonstration. Run receives a fresh trace and
// records its output there; routines do not print directly.
type Routine struct {
	// Name identifies the routine in banners and transcripts.
	Name string

	// Run records the routine's output on the trace.
	Run func(*Trace)
}

// Runner executes a fixed sequence of routines in order.
// The sequence is captured at construction and never changes.
type Runner struct {
	routines []Routine
}

// NewRunner returns a runner over the given routines.
// The routine list is copied; later mutation of the argument slice
// does not affect the runner.
func NewRunner(routines ...Routine) *Runner {
	return &Runner{routines: slices.Clone(routines)}
}

// Len reports the number of routines.
func (r *Runner) Len() int {
	return len(r.routines)
}

// Names returns the routine names in execution order.
func (r *Runner) Names() []string {
	names := make([]string, len(r.routines))
	for i, rt := range r.routines {
		names[i] = rt.Name
	}
	return names
}

// Transcripts executes every routine against a fresh trace and returns
// the (name, lines) pairs in execution order. Each call re-executes
// the routines from scratch.
func (r *Runner) Transcripts() []Pair[string, []string] {
	out := make([]Pair[string, []string], len(r.routines))
	for i, rt := range r.routines {
		tr := NewTrace()
		rt.Run(tr)
		out[i] = Pair[string, []string]{Fst: rt.Name, Snd: tr.Lines()}
	}
	return out
}

// Run executes every routine in order, writing a banner line followed
// by the routine's trace to w. Routines are separated by a blank line.
// The first write error stops execution of the remaining routines.
func (r *Runner) Run(w io.Writer) error {
	for i, rt := range r.routines {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n", rt.Name); err != nil {
			return err
		}
		tr := NewTrace()
		rt.Run(tr)
		if _, err := tr.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
