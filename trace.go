// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"fmt"
	"io"
	"slices"
)

// Trace is an append-only transcript of demonstration output. Routines
// write lines into a trace instead of printing directly, so the same
// routine can be rendered to a terminal, asserted against in tests, or
// discarded.
type Trace struct {
	lines []string
}

// NewTrace returns an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// Printf formats one line and appends it to the trace.
// The format string follows [fmt.Sprintf]; no trailing newline is needed.
func (tr *Trace) Printf(format string, args ...any) {
	tr.lines = append(tr.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the recorded lines in append order.
func (tr *Trace) Lines() []string {
	return slices.Clone(tr.lines)
}

// Len reports the number of recorded lines.
func (tr *Trace) Len() int {
	return len(tr.lines)
}

// WriteTo writes each recorded line followed by a newline to w.
// It implements [io.WriterTo].
func (tr *Trace) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, line := range tr.lines {
		n, err := io.WriteString(w, line)
		written += int64(n)
		if err != nil {
			return written, err
		}
		n, err = io.WriteString(w, "\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
