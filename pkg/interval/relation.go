package interval

import (
	"github.com/cockroachdb/errors"
)

// Relation is one of the thirteen mutually exclusive positions of two
// non-empty intervals.
type Relation int

const (
	Before Relation = iota
	After
	MeetsBeginningOf
	MeetsEndOf
	OverlapsBeginningOf
	OverlapsEndOf
	During
	Contains
	Starts
	StartedBy
	Finishes
	FinishedBy
	Equal
)

// ErrUnknownRelation is returned by ParseRelation.
var ErrUnknownRelation = errors.New("unknown relation")

var relationNames = [...]string{
	Before:              "before",
	After:               "after",
	MeetsBeginningOf:    "meets-beginning-of",
	MeetsEndOf:          "meets-end-of",
	OverlapsBeginningOf: "overlaps-beginning-of",
	OverlapsEndOf:       "overlaps-end-of",
	During:              "during",
	Contains:            "contains",
	Starts:              "starts",
	StartedBy:           "started-by",
	Finishes:            "finishes",
	FinishedBy:          "finished-by",
	Equal:               "equal",
}

// Relations returns all relations in declaration order.
func Relations() []Relation {
	rr := make([]Relation, 0, len(relationNames))
	for r := range relationNames {
		rr = append(rr, Relation(r))
	}
	return rr
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "unknown"
	}
	return relationNames[r]
}

// ParseRelation returns the relation named s, as printed by String.
func ParseRelation(s string) (Relation, error) {
	for r, name := range relationNames {
		if name == s {
			return Relation(r), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownRelation, "%q", s)
}

// Inverse returns the relation that holds for (b, a) when r holds for
// (a, b).
func (r Relation) Inverse() Relation {
	switch r {
	case Equal:
		return Equal
	case Before, MeetsBeginningOf, OverlapsBeginningOf, During, Starts, Finishes:
		return r + 1
	default:
		return r - 1
	}
}

// AcceptsPoint reports whether r is defined between an interval and a
// single value.
func (r Relation) AcceptsPoint() bool {
	switch r {
	case Before, After, MeetsBeginningOf, MeetsEndOf, Contains, StartedBy, FinishedBy:
		return true
	}
	return false
}

// Is reports whether r holds for (iv, other).
func (iv Interval[T]) Is(r Relation, other Interval[T]) bool {
	switch r {
	case Before:
		return iv.Before(other)
	case After:
		return iv.After(other)
	case MeetsBeginningOf:
		return iv.MeetsBeginningOf(other)
	case MeetsEndOf:
		return iv.MeetsEndOf(other)
	case OverlapsBeginningOf:
		return iv.OverlapsBeginningOf(other)
	case OverlapsEndOf:
		return iv.OverlapsEndOf(other)
	case During:
		return iv.During(other)
	case Contains:
		return iv.Contains(other)
	case Starts:
		return iv.Starts(other)
	case StartedBy:
		return iv.StartedBy(other)
	case Finishes:
		return iv.Finishes(other)
	case FinishedBy:
		return iv.FinishedBy(other)
	case Equal:
		return iv.Equal(other)
	}
	return false
}

// IsPoint reports whether r holds for (iv, p). Relations that need two
// intervals are false for every p.
func (iv Interval[T]) IsPoint(r Relation, p T) bool {
	if !r.AcceptsPoint() {
		return false
	}
	return iv.Is(r, iv.point(p))
}

// Relate returns the relation that holds for (iv, other). Exactly one
// does for any two non-empty intervals.
func (iv Interval[T]) Relate(other Interval[T]) Relation {
	ae, be := iv.openEnd(), other.openEnd()
	ss := iv.dom.Compare(iv.start, other.start)
	ee := iv.cmpBound(ae, be)
	switch {
	case iv.cmpValueBound(other.start, ae) > 0:
		return Before
	case iv.cmpValueBound(other.start, ae) == 0:
		return MeetsBeginningOf
	case iv.cmpValueBound(iv.start, be) > 0:
		return After
	case iv.cmpValueBound(iv.start, be) == 0:
		return MeetsEndOf
	case ss == 0 && ee == 0:
		return Equal
	case ss == 0 && ee < 0:
		return Starts
	case ss == 0:
		return StartedBy
	case ee == 0 && ss > 0:
		return Finishes
	case ee == 0:
		return FinishedBy
	case ss < 0 && ee > 0:
		return Contains
	case ss > 0 && ee < 0:
		return During
	case ss < 0:
		return OverlapsBeginningOf
	default:
		return OverlapsEndOf
	}
}
