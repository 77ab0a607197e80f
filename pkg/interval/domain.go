package interval

import (
	"golang.org/x/exp/constraints"
)

// Domain describes a discrete, totally ordered element type.
//
// Compare returns -1, 0 or +1. Next returns the successor of v; ok is
// false when v is the largest representable value.
//
// Types without a natural successor, floating point for instance, have
// no Domain: closed and half-open ends cannot be normalized for them.
type Domain[T any] interface {
	Compare(a, b T) int
	Next(v T) (next T, ok bool)
}

// Validator is implemented by domains that reject some bound
// combinations at construction time.
type Validator[T any] interface {
	Validate(start, end T) error
}

type integers[T constraints.Integer] struct{}

// Integers returns the Domain of a Go integer type.
func Integers[T constraints.Integer]() Domain[T] { return integers[T]{} }

func (integers[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (integers[T]) Next(v T) (T, bool) {
	n := v + 1
	// wraps at the type max
	return n, n > v
}
