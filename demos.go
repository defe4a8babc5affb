// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Routines returns the demonstration catalogue in its fixed order.
// Each routine is self-contained: it allocates what it needs, records
// its output on the trace it receives, and releases every buffer it
// owned before returning. Running the catalogue twice produces
// identical transcripts.
func Routines() []Routine {
	return []Routine{
		{
			Name: "construct_and_destructure_tuple",
			Run: func(tr *Trace) {
				tup := Triple[int, float64, int]{Fst: 500, Snd: 6.4, Trd: 1}
				x, y, z := tup.Unpack()
				tr.Printf("The value of y is: %v", y)
				tr.Printf("destructured matches positional: %v",
					x == tup.Fst && y == tup.Snd && z == tup.Trd)
			},
		},
		{
			Name: "functions_and_expressions",
			Run: func(tr *Trace) {
				anotherFunction(tr)
				printLabeledMeasurement(tr, 5, 'h')
				added := plusOne(1)
				tr.Printf("The added value is %d", added)
				condition := true
				number := 6
				if condition {
					number = 5
				}
				tr.Printf("The value of number is: %d", number)
			},
		},
		{
			Name: "grow_owned_buffer",
			Run: func(tr *Trace) {
				Within(func(sc *Scope) {
					s := Track(sc, NewText("hello"))
					s.Push(", world!")
					tr.Printf("%s", s.String())
				})
			},
		},
		{
			Name: "compare_stack_vs_heap_copy",
			Run: func(tr *Trace) {
				x := 5
				y := x
				tr.Printf("x = %d, y = %d", x, y)

				bad := NewProgram().
					Let("s1", "hello").
					Move("s2", "s1").
					Read("s1")
				if err := bad.Run(tr); err != nil {
					tr.Printf("rejected before execution: %v", err)
				}

				good := NewProgram().
					Let("s1", "hello").
					Move("s2", "s1").
					Read("s2")
				if err := good.Run(tr); err != nil {
					tr.Printf("unexpected rejection: %v", err)
				}
			},
		},
		{
			Name: "clone_owned_buffer",
			Run: func(tr *Trace) {
				Within(func(sc *Scope) {
					s1 := Track(sc, NewText("hello"))
					s2 := Track(sc, s1.Clone())
					tr.Printf("s1 = %s, s2 = %s", s1.String(), s2.String())
				})
			},
		},
		{
			Name: "transfer_ownership_out_and_back",
			Run: func(tr *Trace) {
				Within(func(sc *Scope) {
					s1 := Track(sc, givesOwnership())
					tr.Printf("s1 = %s", s1.String())

					s2 := Track(sc, NewText("Hello"))
					s3 := Track(sc, takesAndGivesBack(s2))
					tr.Printf("s2 live after move: %v", s2.Live())
					tr.Printf("s3 = %s", s3.String())
				})
			},
		},
		{
			Name: "compute_with_side_return",
			Run: func(tr *Trace) {
				Within(func(sc *Scope) {
					s := Track(sc, NewText("hello"))
					passed, length := calculateLength(s).Unpack()
					Track(sc, passed)
					tr.Printf("The length of '%s' is %d", passed.String(), length)
				})
			},
		},
		{
			Name: "read_via_borrow",
			Run: func(tr *Trace) {
				Within(func(sc *Scope) {
					s1 := Track(sc, NewText("hello"))
					length := borrowedLength(s1)
					tr.Printf("The length of %s is %d", s1.String(), length)
				})
			},
		},
		{
			Name: "bounded_repeat_with_result",
			Run: func(tr *Trace) {
				result := Iterate(0, func(counter int) Either[int, int] {
					counter++
					if counter == 10 {
						return Left[int, int](counter * 2)
					}
					return Right[int, int](counter)
				})
				tr.Printf("The value of result is: %d", result)
			},
		},
		{
			Name: "conditional_repeat",
			Run: func(tr *Trace) {
				ScanDown(3).Each(func(number int) {
					tr.Printf("%d", number)
				})
				tr.Printf("Liftoff!")
			},
		},
		{
			Name: "indexed_sequence_scan",
			Run: func(tr *Trace) {
				a := [5]int{10, 20, 30, 40, 50}
				ScanIndexed(a[:]).Each(func(p Pair[int, int]) {
					tr.Printf("The value is: %d", a[p.Fst])
				})
			},
		},
		{
			Name: "sequence_scan_by_value",
			Run: func(tr *Trace) {
				a := [5]int{10, 20, 30, 40, 50}
				ScanValues(a[:]).Each(func(element int) {
					tr.Printf("The value is %d", element)
				})
			},
		},
		{
			Name: "bounded_numeric_range_scan",
			Run: func(tr *Trace) {
				ScanRange(1, 4).Each(func(number int) {
					tr.Printf("%d!", number)
				})
			},
		},
	}
}

func anotherFunction(tr *Trace) {
	tr.Printf("Another function")
}

func printLabeledMeasurement(tr *Trace, value int, unitLabel rune) {
	tr.Printf("The measurement is: %d%c", value, unitLabel)
}

func plusOne(number int) int {
	return number + 1
}

// givesOwnership allocates a buffer and moves it out to the caller.
func givesOwnership() *Text {
	someText := NewText("yours")
	return someText
}

// takesAndGivesBack takes ownership of a buffer and immediately moves
// it back out. The caller's original handle is consumed.
func takesAndGivesBack(aText *Text) *Text {
	return aText.Move()
}

// calculateLength takes ownership of a buffer and returns it together
// with its length, so the caller can keep using the content it passed
// in. Borrowing makes this round trip unnecessary; see borrowedLength.
func calculateLength(t *Text) Pair[*Text, int] {
	owned := t.Move()
	return Pair[*Text, int]{Fst: owned, Snd: owned.Len()}
}

// borrowedLength reads the length through a borrow. Ownership never
// transfers and the caller's handle stays usable afterwards.
func borrowedLength(t *Text) int {
	ref := t.Borrow()
	defer ref.End()
	return ref.Len()
}
