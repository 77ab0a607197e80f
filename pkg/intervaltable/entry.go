package intervaltable

import (
	"fmt"

	"github.com/henderiw/interval/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry[T any] interface {
	Interval() interval.Interval[T]
	Labels() labels.Set
	String() string
	Equal(e2 Entry[T]) bool
}

type entry[T any] struct {
	iv     interval.Interval[T]
	labels labels.Set
}

type Entries[T any] []Entry[T]

func (r entry[T]) Interval() interval.Interval[T] { return r.iv }
func (r entry[T]) Labels() labels.Set             { return r.labels }
func (r entry[T]) String() string {
	return fmt.Sprintf("interval: %s, labels: %s", r.iv.String(), r.labels.String())
}
func (r entry[T]) Equal(e2 Entry[T]) bool {
	return r.iv.Equal(e2.Interval()) &&
		r.labels.String() == e2.Labels().String()
}

func NewEntry[T any](iv interval.Interval[T], l labels.Set) Entry[T] {
	if l == nil {
		l = labels.Set{}
	}
	return entry[T]{
		iv:     iv,
		labels: l,
	}
}
