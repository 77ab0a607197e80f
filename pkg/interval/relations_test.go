package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func closed(start, end int) Interval[int]   { return Must(Closed(start, end)) }
func halfOpen(start, end int) Interval[int] { return Must(HalfOpen(start, end)) }

func TestRelations(t *testing.T) {
	cases := map[string]struct {
		a, b     Interval[int]
		holds    []Relation
		notHolds []Relation
	}{
		"ClosedTouchingEndOverlaps": {
			a:        closed(1, 10),
			b:        closed(10, 11),
			holds:    []Relation{OverlapsBeginningOf},
			notHolds: []Relation{Before, MeetsBeginningOf},
		},
		"HalfOpenMeets": {
			a:     halfOpen(1, 11),
			b:     halfOpen(11, 12),
			holds: []Relation{MeetsBeginningOf},
		},
		"ClosedDuring": {
			a:     closed(2, 10),
			b:     closed(1, 11),
			holds: []Relation{During},
		},
		"MixedStarts": {
			a:     closed(1, 10),
			b:     halfOpen(1, 12),
			holds: []Relation{Starts},
		},
		"ClosedFinishes": {
			a:     closed(2, 11),
			b:     closed(1, 11),
			holds: []Relation{Finishes},
		},
		"ClosedSuccessorMeets": {
			a:        closed(1, 5),
			b:        closed(6, 10),
			holds:    []Relation{MeetsBeginningOf},
			notHolds: []Relation{Before},
		},
		"ClosedGapBefore": {
			a:     closed(1, 5),
			b:     closed(7, 10),
			holds: []Relation{Before},
		},
		"HalfOpenOverlapsBeginning": {
			a:     halfOpen(1, 11),
			b:     halfOpen(10, 12),
			holds: []Relation{OverlapsBeginningOf},
		},
		"HalfOpenClosedOverlapsBeginning": {
			a:     halfOpen(1, 11),
			b:     closed(10, 11),
			holds: []Relation{OverlapsBeginningOf},
		},
		"ClosedHalfOpenOverlapsBeginning": {
			a:     closed(1, 10),
			b:     halfOpen(10, 12),
			holds: []Relation{OverlapsBeginningOf},
		},
		"HalfOpenDuringClosed": {
			a:     halfOpen(2, 11),
			b:     closed(1, 11),
			holds: []Relation{During},
		},
		"ClosedDuringHalfOpen": {
			a:     closed(2, 10),
			b:     halfOpen(1, 12),
			holds: []Relation{During},
		},
		"HalfOpenStartsClosed": {
			a:     halfOpen(1, 11),
			b:     closed(1, 11),
			holds: []Relation{Starts},
		},
		"HalfOpenFinishesClosed": {
			a:     halfOpen(2, 12),
			b:     closed(1, 11),
			holds: []Relation{Finishes},
		},
		"ClosedFinishesHalfOpen": {
			a:     closed(2, 11),
			b:     halfOpen(1, 12),
			holds: []Relation{Finishes},
		},
		"ClosedEqualsHalfOpen": {
			a:     closed(1, 10),
			b:     halfOpen(1, 11),
			holds: []Relation{Equal},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, r := range tc.holds {
				assert.True(t, tc.a.Is(r, tc.b), "%s %s %s", tc.a, r, tc.b)
				assert.True(t, tc.b.Is(r.Inverse(), tc.a), "%s %s %s", tc.b, r.Inverse(), tc.a)
				assert.Equal(t, r, tc.a.Relate(tc.b))
			}
			for _, r := range tc.notHolds {
				assert.False(t, tc.a.Is(r, tc.b), "%s %s %s", tc.a, r, tc.b)
			}
		})
	}
}

func TestRelationMethods(t *testing.T) {
	a, b := closed(2, 10), closed(1, 11)

	assert.True(t, a.During(b))
	assert.True(t, b.Contains(a))
	assert.False(t, a.Contains(b))
	assert.True(t, closed(1, 10).Starts(halfOpen(1, 12)))
	assert.True(t, halfOpen(1, 12).StartedBy(closed(1, 10)))
	assert.True(t, closed(2, 11).Finishes(closed(1, 11)))
	assert.True(t, closed(1, 11).FinishedBy(closed(2, 11)))
	assert.True(t, closed(1, 5).Before(closed(7, 9)))
	assert.True(t, closed(7, 9).After(closed(1, 5)))
	assert.True(t, closed(6, 9).MeetsEndOf(closed(1, 5)))
	assert.True(t, closed(10, 12).OverlapsEndOf(closed(1, 10)))
}

func TestComposites(t *testing.T) {
	cases := map[string]struct {
		a, b           Interval[int]
		lessOrEqual    bool
		greaterOrEqual bool
		between        bool
		includesValue  bool
		overlaps       bool
	}{
		"Before":     {a: closed(1, 3), b: closed(5, 6), lessOrEqual: true},
		"Meets":      {a: closed(1, 4), b: closed(5, 6), lessOrEqual: true},
		"After":      {a: closed(8, 9), b: closed(5, 6), greaterOrEqual: true},
		"MeetsEnd":   {a: halfOpen(7, 9), b: closed(5, 6), greaterOrEqual: true},
		"Starts":     {a: closed(5, 6), b: closed(5, 9), between: true, overlaps: true},
		"During":     {a: closed(6, 7), b: closed(5, 9), between: true, overlaps: true},
		"Finishes":   {a: closed(6, 9), b: halfOpen(5, 10), between: true, overlaps: true},
		"StartedBy":  {a: closed(5, 9), b: closed(5, 6), includesValue: true, overlaps: true},
		"Contains":   {a: closed(5, 9), b: closed(6, 7), includesValue: true, overlaps: true},
		"Equal":      {a: closed(5, 9), b: halfOpen(5, 10), includesValue: true, overlaps: true},
		"FinishedBy": {a: closed(5, 9), b: closed(6, 9), includesValue: true, overlaps: true},
		"Overlaps":   {a: closed(1, 6), b: closed(5, 9), overlaps: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.lessOrEqual, tc.a.LessOrEqual(tc.b), "lessOrEqual")
			assert.Equal(t, tc.greaterOrEqual, tc.a.GreaterOrEqual(tc.b), "greaterOrEqual")
			assert.Equal(t, tc.between, tc.a.Between(tc.b), "between")
			assert.Equal(t, tc.includesValue, tc.a.IncludesValue(tc.b), "includesValue")
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b), "overlaps")
		})
	}
}

func TestPointRelations(t *testing.T) {
	a := closed(5, 9)
	cases := map[string]struct {
		p     int
		holds []Relation
	}{
		"Below":    {p: 2, holds: []Relation{After}},
		"Adjacent": {p: 4, holds: []Relation{MeetsEndOf}},
		"AtStart":  {p: 5, holds: []Relation{StartedBy}},
		"Inside":   {p: 7, holds: []Relation{Contains}},
		"AtEnd":    {p: 9, holds: []Relation{FinishedBy}},
		"OpenEnd":  {p: 10, holds: []Relation{MeetsBeginningOf}},
		"Above":    {p: 12, holds: []Relation{Before}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, r := range Relations() {
				want := false
				for _, h := range tc.holds {
					if h == r {
						want = true
					}
				}
				assert.Equal(t, want, a.IsPoint(r, tc.p), "%s %s %d", a, r, tc.p)
			}
		})
	}

	assert.True(t, a.BeforePoint(12))
	assert.True(t, a.AfterPoint(2))
	assert.True(t, a.MeetsBeginningOfPoint(10))
	assert.True(t, a.MeetsEndOfPoint(4))
	assert.True(t, a.ContainsPoint(7))
	assert.True(t, a.StartedByPoint(5))
	assert.True(t, a.FinishedByPoint(9))
	assert.True(t, a.LessOrEqualPoint(10))
	assert.True(t, a.GreaterOrEqualPoint(4))
	assert.True(t, a.IncludesValuePoint(5))
	assert.False(t, closed(5, 5).IncludesValuePoint(5))
	assert.True(t, closed(5, 5).HasValue(5))
}

func TestPointIsSingleValueInterval(t *testing.T) {
	for _, a := range []Interval[int]{closed(2, 6), halfOpen(2, 6), closed(4, 4)} {
		for p := 0; p < 9; p++ {
			pt := closed(p, p)
			assert.Equal(t, a.Contains(pt), a.ContainsPoint(p))
			assert.Equal(t, a.Before(pt), a.BeforePoint(p))
			assert.Equal(t, a.After(pt), a.AfterPoint(p))
			assert.Equal(t, a.MeetsBeginningOf(pt), a.MeetsBeginningOfPoint(p))
			assert.Equal(t, a.MeetsEndOf(pt), a.MeetsEndOfPoint(p))
			assert.Equal(t, a.StartedBy(pt), a.StartedByPoint(p))
			assert.Equal(t, a.FinishedBy(pt), a.FinishedByPoint(p))
		}
	}
}
