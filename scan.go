// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Scan is a lazy, finite, single-pass sequence of steps. Each Next call
// produces at most one element; once the scan reports exhaustion it
// stays exhausted. There is no rewind and no restart: a consumed scan
// cannot be traversed again.
type Scan[T any] struct {
	next func() (T, bool)
	done bool
}

// newScan wraps a step function into a single-pass scan.
func newScan[T any](next func() (T, bool)) *Scan[T] {
	return &Scan[T]{next: next}
}

// Next advances the scan by one step.
// Returns (element, true) while elements remain, then (zero, false)
// forever once the scan is exhausted.
func (s *Scan[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.next = nil
		var zero T
		return zero, false
	}
	return v, true
}

// Collect drains the remaining elements into a slice, consuming the scan.
func (s *Scan[T]) Collect() []T {
	var out []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}

// Each applies f to each remaining element in order, consuming the scan.
func (s *Scan[T]) Each(f func(T)) {
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		f(v)
	}
}

// ScanRange scans the half-open integer range [lo, hi) in ascending
// order; the end value is excluded. An empty range (hi <= lo) is
// exhausted immediately.
func ScanRange(lo, hi int) *Scan[int] {
	cur := lo
	return newScan(func() (int, bool) {
		if cur >= hi {
			return 0, false
		}
		v := cur
		cur++
		return v, true
	})
}

// ScanDown scans from from down to 1 inclusive.
// A non-positive from is exhausted immediately.
func ScanDown(from int) *Scan[int] {
	cur := from
	return newScan(func() (int, bool) {
		if cur < 1 {
			return 0, false
		}
		v := cur
		cur--
		return v, true
	})
}

// ScanValues scans xs in order, yielding each element by value.
func ScanValues[T any](xs []T) *Scan[T] {
	i := 0
	return newScan(func() (T, bool) {
		if i >= len(xs) {
			var zero T
			return zero, false
		}
		v := xs[i]
		i++
		return v, true
	})
}

// ScanIndexed scans xs in order, yielding (index, element) pairs.
// The element ordering is identical to [ScanValues] over the same
// backing sequence.
func ScanIndexed[T any](xs []T) *Scan[Pair[int, T]] {
	i := 0
	return newScan(func() (Pair[int, T], bool) {
		if i >= len(xs) {
			return Pair[int, T]{}, false
		}
		p := Pair[int, T]{Fst: i, Snd: xs[i]}
		i++
		return p, true
	})
}

// Iterate drives state through step until the step breaks out with a
// carried result: Right continues the loop with the next state, Left
// ends it and Iterate returns the carried value. The loop body decides
// termination; Iterate itself never bounds the step count.
func Iterate[S, R any](init S, step func(S) Either[R, S]) R {
	s := init
	for {
		e := step(s)
		if r, ok := e.GetLeft(); ok {
			return r
		}
		s, _ = e.GetRight()
	}
}
