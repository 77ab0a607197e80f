package intervaltable

import "github.com/henderiw/interval/pkg/interval"

// Iterator walks a snapshot of table entries in ascending start order.
type Iterator[T any] struct {
	current int
	entries Entries[T]
}

func (r *Iterator[T]) Value() Entry[T] {
	return r.entries[r.current]
}

func (r *Iterator[T]) Interval() interval.Interval[T] {
	return r.entries[r.current].Interval()
}

func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.entries)
}

// IsConsecutive reports whether the current entry starts right after the
// previous one.
func (r *Iterator[T]) IsConsecutive() bool {
	if r.current < 1 {
		return false
	}
	return r.entries[r.current-1].Interval().MeetsBeginningOf(r.entries[r.current].Interval())
}
