package interval

// Before reports whether iv ends before other begins, with a gap of at
// least one value. Same as other.After(iv).
//
//	|iv----|
//	          |other-|
func (iv Interval[T]) Before(other Interval[T]) bool {
	oe := iv.openEnd()
	return !oe.inf && iv.dom.Compare(oe.v, other.start) < 0
}

// After reports whether iv begins after other ends. Same as
// other.Before(iv).
//
//	          |iv----|
//	|other-|
func (iv Interval[T]) After(other Interval[T]) bool {
	return other.Before(iv)
}

// MeetsBeginningOf reports whether other begins at the first value after
// iv. Same as other.MeetsEndOf(iv).
//
//	|iv----|
//	       |other-|
func (iv Interval[T]) MeetsBeginningOf(other Interval[T]) bool {
	oe := iv.openEnd()
	return !oe.inf && iv.dom.Compare(oe.v, other.start) == 0
}

// MeetsEndOf reports whether iv begins at the first value after other.
func (iv Interval[T]) MeetsEndOf(other Interval[T]) bool {
	return other.MeetsBeginningOf(iv)
}

// OverlapsBeginningOf reports whether iv starts first and ends inside
// other. Same as other.OverlapsEndOf(iv).
//
//	|iv------|
//	     |other--|
func (iv Interval[T]) OverlapsBeginningOf(other Interval[T]) bool {
	oe := iv.openEnd()
	return iv.dom.Compare(iv.start, other.start) < 0 &&
		iv.cmpValueBound(other.start, oe) < 0 &&
		iv.cmpBound(oe, other.openEnd()) < 0
}

// OverlapsEndOf reports whether iv starts inside other and ends after it.
func (iv Interval[T]) OverlapsEndOf(other Interval[T]) bool {
	return other.OverlapsBeginningOf(iv)
}

// During reports whether iv fits in other without touching its edges.
// Same as other.Contains(iv).
//
//	   |iv---|
//	|other------|
func (iv Interval[T]) During(other Interval[T]) bool {
	return iv.dom.Compare(other.start, iv.start) < 0 &&
		iv.cmpBound(iv.openEnd(), other.openEnd()) < 0
}

// Contains reports whether other fits in iv without touching its edges.
func (iv Interval[T]) Contains(other Interval[T]) bool {
	return other.During(iv)
}

// Starts reports whether iv and other begin together and other lasts
// longer. Same as other.StartedBy(iv).
//
//	|iv---|
//	|other-----|
func (iv Interval[T]) Starts(other Interval[T]) bool {
	return iv.dom.Compare(iv.start, other.start) == 0 &&
		iv.cmpBound(iv.openEnd(), other.openEnd()) < 0
}

// StartedBy reports whether iv and other begin together and iv lasts
// longer.
func (iv Interval[T]) StartedBy(other Interval[T]) bool {
	return other.Starts(iv)
}

// Finishes reports whether iv and other end together and iv begins
// later. Same as other.FinishedBy(iv).
//
//	      |iv---|
//	|other------|
func (iv Interval[T]) Finishes(other Interval[T]) bool {
	return iv.dom.Compare(other.start, iv.start) < 0 &&
		iv.cmpBound(iv.openEnd(), other.openEnd()) == 0
}

// FinishedBy reports whether iv and other end together and other begins
// later.
func (iv Interval[T]) FinishedBy(other Interval[T]) bool {
	return other.Finishes(iv)
}

// Equal reports whether iv and other hold the same values. [1,10] and
// [1,11) are equal.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	return iv.dom.Compare(iv.start, other.start) == 0 &&
		iv.cmpBound(iv.openEnd(), other.openEnd()) == 0
}

// LessOrEqual is Before or MeetsBeginningOf.
func (iv Interval[T]) LessOrEqual(other Interval[T]) bool {
	return iv.Before(other) || iv.MeetsBeginningOf(other)
}

// GreaterOrEqual is After or MeetsEndOf.
func (iv Interval[T]) GreaterOrEqual(other Interval[T]) bool {
	return iv.After(other) || iv.MeetsEndOf(other)
}

// Between is Starts, During or Finishes: iv lies inside other and is not
// equal to it.
func (iv Interval[T]) Between(other Interval[T]) bool {
	return iv.Starts(other) || iv.During(other) || iv.Finishes(other)
}

// IncludesValue is StartedBy, Contains, Equal or FinishedBy: every value
// of other is in iv.
func (iv Interval[T]) IncludesValue(other Interval[T]) bool {
	return iv.StartedBy(other) || iv.Contains(other) || iv.Equal(other) || iv.FinishedBy(other)
}

// Overlaps reports whether iv and other share at least one value.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	return !iv.LessOrEqual(other) && !iv.GreaterOrEqual(other)
}

// The point forms treat p as the interval [p,p].

func (iv Interval[T]) BeforePoint(p T) bool { return iv.Before(iv.point(p)) }

func (iv Interval[T]) AfterPoint(p T) bool { return iv.After(iv.point(p)) }

func (iv Interval[T]) MeetsBeginningOfPoint(p T) bool { return iv.MeetsBeginningOf(iv.point(p)) }

func (iv Interval[T]) MeetsEndOfPoint(p T) bool { return iv.MeetsEndOf(iv.point(p)) }

func (iv Interval[T]) ContainsPoint(p T) bool { return iv.Contains(iv.point(p)) }

func (iv Interval[T]) StartedByPoint(p T) bool { return iv.StartedBy(iv.point(p)) }

func (iv Interval[T]) FinishedByPoint(p T) bool { return iv.FinishedBy(iv.point(p)) }

func (iv Interval[T]) LessOrEqualPoint(p T) bool {
	return iv.BeforePoint(p) || iv.MeetsBeginningOfPoint(p)
}

func (iv Interval[T]) GreaterOrEqualPoint(p T) bool {
	return iv.AfterPoint(p) || iv.MeetsEndOfPoint(p)
}

// IncludesValuePoint is IncludesValue against a point. A point is never
// equal to an interval, so [5,5] does not include 5 in this sense; use
// HasValue for membership.
func (iv Interval[T]) IncludesValuePoint(p T) bool {
	return iv.StartedByPoint(p) || iv.ContainsPoint(p) || iv.FinishedByPoint(p)
}
