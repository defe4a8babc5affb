// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Either represents a value that is either Left or Right.
// [Iterate] uses it as the step outcome: Right carries the state to
// continue with, Left carries the final result that breaks the loop.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[L, R, B any](e Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}
