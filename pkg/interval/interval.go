package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrEmpty is returned when an interval would contain no value.
	ErrEmpty = errors.New("empty interval")
	// ErrInvalid is returned when a bound is not a usable domain value.
	ErrInvalid = errors.New("invalid interval")
)

// Interval is an immutable range of a discrete domain. The start bound is
// always a member, the end bound is a member unless the interval is end
// exclusive.
//
// The zero value is not usable, intervals are built with New or one of
// its helpers.
type Interval[T any] struct {
	start        T
	end          T
	endExclusive bool
	dom          Domain[T]
}

// New returns the interval from start to end. Intervals that would be
// empty are rejected, relations assume non-empty intervals.
func New[T any](d Domain[T], start, end T, endExclusive bool) (Interval[T], error) {
	iv := Interval[T]{
		start:        start,
		end:          end,
		endExclusive: endExclusive,
		dom:          d,
	}
	if d == nil {
		return Interval[T]{}, errors.Wrap(ErrInvalid, "nil domain")
	}
	if v, ok := d.(Validator[T]); ok {
		if err := v.Validate(start, end); err != nil {
			return Interval[T]{}, err
		}
	}
	if iv.cmpValueBound(start, iv.openEnd()) >= 0 {
		return Interval[T]{}, errors.Wrapf(ErrEmpty, "%s", iv.String())
	}
	return iv, nil
}

// Must is like New but panics on error. It simplifies the declaration
// of interval literals.
func Must[T any](iv Interval[T], err error) Interval[T] {
	if err != nil {
		panic(err)
	}
	return iv
}

// Closed returns the integer interval [start,end].
func Closed[T constraints.Integer](start, end T) (Interval[T], error) {
	return New(Integers[T](), start, end, false)
}

// HalfOpen returns the integer interval [start,end).
func HalfOpen[T constraints.Integer](start, end T) (Interval[T], error) {
	return New(Integers[T](), start, end, true)
}

// Point returns the interval holding the single value p.
func Point[T any](d Domain[T], p T) Interval[T] {
	return Interval[T]{start: p, end: p, dom: d}
}

// point builds a degenerate interval in the domain of iv.
func (iv Interval[T]) point(p T) Interval[T] { return Point(iv.dom, p) }

// Start returns the first value of iv.
func (iv Interval[T]) Start() T { return iv.start }

// End returns the end bound of iv, see EndExclusive.
func (iv Interval[T]) End() T { return iv.end }

// EndExclusive reports whether End is outside of iv.
func (iv Interval[T]) EndExclusive() bool { return iv.endExclusive }

// Domain returns the element domain of iv.
func (iv Interval[T]) Domain() Domain[T] { return iv.dom }

// OpenEnd returns the first value after iv. ok is false when that value
// lies beyond the largest representable value of the domain.
func (iv Interval[T]) OpenEnd() (T, bool) {
	b := iv.openEnd()
	return b.v, !b.inf
}

// HasValue reports whether p is a member of iv.
func (iv Interval[T]) HasValue(p T) bool {
	return iv.dom.Compare(iv.start, p) <= 0 && iv.cmpValueBound(p, iv.openEnd()) < 0
}

func (iv Interval[T]) String() string {
	if iv.endExclusive {
		return fmt.Sprintf("[%v,%v)", iv.start, iv.end)
	}
	return fmt.Sprintf("[%v,%v]", iv.start, iv.end)
}

// bound is a normalized open end. inf marks an open end past the
// largest value of the domain.
type bound[T any] struct {
	v   T
	inf bool
}

func (iv Interval[T]) openEnd() bound[T] {
	if iv.endExclusive {
		return bound[T]{v: iv.end}
	}
	n, ok := iv.dom.Next(iv.end)
	if !ok {
		return bound[T]{inf: true}
	}
	return bound[T]{v: n}
}

func (iv Interval[T]) cmpBound(a, b bound[T]) int {
	switch {
	case a.inf && b.inf:
		return 0
	case a.inf:
		return 1
	case b.inf:
		return -1
	}
	return iv.dom.Compare(a.v, b.v)
}

func (iv Interval[T]) cmpValueBound(v T, b bound[T]) int {
	if b.inf {
		return -1
	}
	return iv.dom.Compare(v, b.v)
}
