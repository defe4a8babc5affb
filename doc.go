// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package own provides single-ownership primitives in Go, together with a
// fixed set of demonstration routines that walk through them.
//
// The core type [Owned] is a handle over a heap-backed value with exactly
// one owner at any time. Transferring ownership invalidates the source
// handle, borrowing grants a bounded non-owning view, and cloning produces
// a second fully independent owner. Go's compiler enforces none of this,
// so the discipline is carried at runtime: every handle tracks its consume
// state in a single atomic word and fails fast on misuse.
//
// # Design Philosophy
//
// own provides:
//   - Affine handles: each owner may be consumed (moved or dropped) at most once
//   - Owner-side borrow accounting: a borrowed view cannot outlive its owner
//   - Validation before execution: binding programs are vetted for ownership
//     violations before a single operation runs
//
// # Ownership Discipline
//
//   - [Own]: Create an owning handle over a value
//   - [OwnReleased]: Create a handle with a release hook run on drop
//   - [Owned.Value]: Read the owned value (panics if consumed)
//   - [Owned.TryValue]: Non-panicking variant
//   - [Owned.Move]: Transfer ownership to a fresh handle, invalidating the source
//   - [Owned.TryMove]: Non-panicking variant
//   - [Owned.CloneWith]: Second independent owner with deep-copied content
//   - [Owned.Modify]: Update the value in place through the handle
//   - [Owned.Drop]: Consume the handle and run its release hook
//   - [Owned.Live], [Owned.Borrowed]: State predicates
//
// Consume semantics are exactly-one-winner: under concurrent misuse, one
// Move or Drop succeeds and every other consumer panics. The handles make
// misuse detectable, not operations atomic; values are meant to be used
// from one goroutine at a time.
//
// # Borrowed Views
//
// [Ref] is a non-owning view onto an owned value. While any borrow is
// outstanding, Move, Drop, and Modify on the owner panic, which enforces
// the borrow-never-outlives-owner invariant from the owner's side.
//
//   - [Owned.Borrow]: Open a view (panics if the owner is consumed)
//   - [Ref.Value]: Read through the view (panics after End)
//   - [Ref.End]: Return the borrow (panics on reuse)
//   - [Ref.TryEnd]: Non-panicking variant
//   - [Borrowing]: Bracketed borrow with guaranteed End
//
// # Scopes
//
// [Scope] releases tracked handles deterministically, last-tracked first,
// skipping handles whose ownership was transferred out beforehand.
//
//   - [NewScope]: Create a scope
//   - [Track]: Register a handle with a scope
//   - [Scope.End]: Drop remaining live handles in reverse order (one-shot)
//   - [Within]: Bracketed scope with guaranteed End
//
// # Owned Text Buffers
//
// [Text] is a growable heap-backed text buffer with single ownership,
// the concrete type the demonstrations move, clone, and borrow. Backing
// storage is pooled and zeroed on release.
//
//   - [NewText]: Construct from a string literal
//   - [Text.Push]: Append text in place
//   - [Text.Len], [Text.String]: Inspect contents
//   - [Text.Move], [Text.Clone], [Text.Drop], [Text.Borrow], [Text.Live]
//   - [TextRef]: Borrowed view with Len/String/End
//
// # Tuples and Either
//
//   - [Pair], [Triple]: Fixed-size heterogeneous records; the fields are the
//     positional accessors and Unpack destructures into named bindings
//   - [Either], [Left], [Right], [MatchEither]: Two-sided sum used for
//     loops that break with a carried result
//
// # Scans and Loops
//
// [Scan] is a lazy, finite, single-pass traversal. Once a scan is
// exhausted it stays exhausted; there is no rewind.
//
//   - [Scan.Next]: Advance one step
//   - [Scan.Collect], [Scan.Each]: Drain the remainder
//   - [ScanRange]: Half-open integer range [lo, hi)
//   - [ScanValues]: In-order scan of a sequence by value
//   - [ScanIndexed]: In-order scan carrying (index, value) pairs
//   - [ScanDown]: Countdown from n to 1
//   - [Iterate]: Drive state until the step breaks with a carried result
//
// # Binding Programs
//
// Use of a moved-out binding must be rejected before execution, never
// surfaced mid-run. [Program] therefore represents a sequence of binding
// operations as data: [LetOp], [MoveOp], [CloneOp], [ReadOp], [DropOp].
// [Program.Vet] walks the operations with a linear ownership model and
// reports the first violation as a [VetError]; [Program.Run] vets first
// and executes nothing when vetting fails.
//
// # Demonstration Runner
//
// A [Routine] is an independent, idempotent demonstration that prints
// through a [Trace]. [Runner] executes routines in a fixed order and
// collects their transcripts; [Routines] returns the standard set, from
// tuple construction through ownership transfer to bounded range scans.
//
//   - [Trace.Printf], [Trace.Lines], [Trace.WriteTo]
//   - [NewRunner], [Runner.Transcripts], [Runner.Run], [Runner.Names]
//
// # Example
//
//	s1 := own.NewText("hello")
//	s2 := s1.Clone()        // independent copy; both owners live
//	s3 := s1.Move()         // s1 is consumed from here on
//
//	view := s3.Borrow()
//	n := view.Len()         // read without taking ownership
//	view.End()
//
//	_ = s2.String() // "hello"
//	_ = s3.String() // "hello"
//	_ = n           // 5
//	_ = s1.Live()   // false; s1.String() would panic
package own
