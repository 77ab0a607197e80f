package intervaltable

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-logr/logr"
	"github.com/henderiw/interval/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

var (
	ErrNotFound   = errors.New("entry not found")
	ErrOverlap    = errors.New("interval overlaps a claimed entry")
	ErrOutOfRange = errors.New("interval outside of table range")
	ErrExhausted  = errors.New("no free value left")
)

// Table holds labeled, non-overlapping intervals within a fixed universe.
type Table[T any] interface {
	Get(iv interval.Interval[T]) (Entry[T], error)
	GetByValue(v T) (Entry[T], error)
	Claim(iv interval.Interval[T], l labels.Set) error
	ClaimDynamic(l labels.Set) (Entry[T], error)
	ClaimSize(size uint64, l labels.Set) (Entry[T], error)
	Release(iv interval.Interval[T]) error
	Update(iv interval.Interval[T], l labels.Set) error

	Iterate() *Iterator[T]
	IterateFree() *Iterator[T]

	Count() int
	Has(iv interval.Interval[T]) bool

	IsFree(iv interval.Interval[T]) bool
	FindFree() (T, error)
	FindFreeRange(start T, size uint64) (interval.Interval[T], error)
	FindFreeSize(size uint64) (interval.Interval[T], error)
	FindByRelation(rel interval.Relation, query interval.Interval[T]) Entries[T]

	Universe() interval.Interval[T]
	GetAll() Entries[T]
	GetByLabel(selector labels.Selector) Entries[T]
}

// ValidationFn is called on every claim except the initial entries.
type ValidationFn[T any] func(iv interval.Interval[T]) error

func NewTable[T any](name string, universe interval.Interval[T], initEntries Entries[T], v ValidationFn[T], opts ...Option) (Table[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	r := &table[T]{
		m:          new(sync.RWMutex),
		name:       name,
		universe:   universe,
		validateFn: v,
		log:        o.logger.WithValues("table", name),
		metrics:    newTableMetrics(name),
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e.Interval(), e.Labels(), true); err != nil {
			errm = errors.CombineErrors(errm, err)
		}
	}

	return r, errm
}

type table[T any] struct {
	m          *sync.RWMutex
	name       string
	universe   interval.Interval[T]
	entries    Entries[T] // sorted by start, never overlapping
	validateFn ValidationFn[T]
	log        logr.Logger
	metrics    *tableMetrics
}

func (r *table[T]) compare(a, b T) int { return r.universe.Domain().Compare(a, b) }

func (r *table[T]) validate(iv interval.Interval[T], init bool) error {
	if !r.universe.IncludesValue(iv) {
		return errors.Wrapf(ErrOutOfRange, "interval %s, range %s", iv, r.universe)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(iv); err != nil {
			return err
		}
	}
	return nil
}

// search returns the index of the first entry starting after v.
func (r *table[T]) search(v T) int {
	return sort.Search(len(r.entries), func(i int) bool {
		return r.compare(r.entries[i].Interval().Start(), v) > 0
	})
}

// find returns the index of the entry holding v, or -1.
func (r *table[T]) find(v T) int {
	i := r.search(v) - 1
	if i >= 0 && r.entries[i].Interval().HasValue(v) {
		return i
	}
	return -1
}

// overlapping returns the entry sharing a value with iv, if any.
func (r *table[T]) overlapping(iv interval.Interval[T]) (Entry[T], bool) {
	// claims are disjoint: only the neighbours around iv.Start can overlap
	i := r.search(iv.Start())
	for _, j := range []int{i - 1, i} {
		if j >= 0 && j < len(r.entries) && r.entries[j].Interval().Overlaps(iv) {
			return r.entries[j], true
		}
	}
	return nil, false
}

// exact returns the index of the entry equal to iv, or -1.
func (r *table[T]) exact(iv interval.Interval[T]) int {
	i := r.find(iv.Start())
	if i >= 0 && r.entries[i].Interval().Equal(iv) {
		return i
	}
	return -1
}

func (r *table[T]) Universe() interval.Interval[T] { return r.universe }

func (r *table[T]) Get(iv interval.Interval[T]) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	i := r.exact(iv)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "interval %s", iv)
	}
	return r.entries[i], nil
}

func (r *table[T]) GetByValue(v T) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	i := r.find(v)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "value %v", v)
	}
	return r.entries[i], nil
}

func (r *table[T]) Claim(iv interval.Interval[T], l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(iv, l, false)
}

func (r *table[T]) ClaimDynamic(l labels.Set) (Entry[T], error) {
	r.m.Lock()
	defer r.m.Unlock()

	v, err := r.findFree()
	if err != nil {
		return nil, err
	}
	iv := interval.Point(r.universe.Domain(), v)
	if err := r.add(iv, l, false); err != nil {
		return nil, err
	}
	return r.entries[r.exact(iv)], nil
}

func (r *table[T]) ClaimSize(size uint64, l labels.Set) (Entry[T], error) {
	r.m.Lock()
	defer r.m.Unlock()

	iv, err := r.findFreeSize(size)
	if err != nil {
		return nil, err
	}
	if err := r.add(iv, l, false); err != nil {
		return nil, err
	}
	return r.entries[r.exact(iv)], nil
}

func (r *table[T]) Release(iv interval.Interval[T]) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.delete(iv)
}

func (r *table[T]) Update(iv interval.Interval[T], l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.update(iv, l)
}

func (r *table[T]) Iterate() *Iterator[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table[T]) iterate() *Iterator[T] {
	entries := make(Entries[T], len(r.entries))
	copy(entries, r.entries)
	return &Iterator[T]{current: -1, entries: entries}
}

func (r *table[T]) IterateFree() *Iterator[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterateFree()
}

// iterateFree returns the gaps between claimed entries. Gaps before a
// claim are end exclusive, the trailing gap keeps the end of the
// universe.
func (r *table[T]) iterateFree() *Iterator[T] {
	var free Entries[T]
	d := r.universe.Domain()
	cursor, ok := r.universe.Start(), true
	for _, e := range r.entries {
		if r.compare(cursor, e.Interval().Start()) < 0 {
			if gap, err := interval.New(d, cursor, e.Interval().Start(), true); err == nil {
				free = append(free, NewEntry(gap, nil))
			}
		}
		if cursor, ok = e.Interval().OpenEnd(); !ok {
			break
		}
	}
	if ok && r.universe.HasValue(cursor) {
		if gap, err := interval.New(d, cursor, r.universe.End(), r.universe.EndExclusive()); err == nil {
			free = append(free, NewEntry(gap, nil))
		}
	}
	return &Iterator[T]{current: -1, entries: free}
}

func (r *table[T]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table[T]) Has(iv interval.Interval[T]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.exact(iv) >= 0
}

func (r *table[T]) IsFree(iv interval.Interval[T]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.isFree(iv)
}

func (r *table[T]) isFree(iv interval.Interval[T]) bool {
	_, ok := r.overlapping(iv)
	return !ok
}

func (r *table[T]) FindFree() (T, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFree()
}

// findFree returns the first free value the validation accepts.
func (r *table[T]) findFree() (T, error) {
	free := r.iterateFree()
	for free.Next() {
		gap := free.Interval()
		for v, ok := gap.Start(), true; ok && gap.HasValue(v); v, ok = r.universe.Domain().Next(v) {
			if r.accepts(interval.Point(r.universe.Domain(), v)) {
				return v, nil
			}
		}
	}
	var zero T
	return zero, errors.Wrapf(ErrExhausted, "table %s", r.name)
}

func (r *table[T]) accepts(iv interval.Interval[T]) bool {
	return r.validateFn == nil || r.validateFn(iv) == nil
}

// sized returns the closed interval of size values beginning at start.
func (r *table[T]) sized(start T, size uint64) (interval.Interval[T], error) {
	if size == 0 {
		return interval.Interval[T]{}, errors.Wrap(interval.ErrEmpty, "size 0")
	}
	d := r.universe.Domain()
	last := start
	for i := uint64(1); i < size; i++ {
		var ok bool
		if last, ok = d.Next(last); !ok {
			return interval.Interval[T]{}, errors.Wrapf(ErrOutOfRange, "size %d from %v", size, start)
		}
	}
	return interval.New(d, start, last, false)
}

func (r *table[T]) FindFreeRange(start T, size uint64) (interval.Interval[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFreeRange(start, size)
}

func (r *table[T]) findFreeRange(start T, size uint64) (interval.Interval[T], error) {
	iv, err := r.sized(start, size)
	if err != nil {
		return interval.Interval[T]{}, err
	}
	if err := r.validate(iv, false); err != nil {
		return interval.Interval[T]{}, err
	}
	if e, ok := r.overlapping(iv); ok {
		return interval.Interval[T]{}, errors.Wrapf(ErrOverlap, "interval %s, claimed %s", iv, e.Interval())
	}
	return iv, nil
}

func (r *table[T]) FindFreeSize(size uint64) (interval.Interval[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFreeSize(size)
}

// findFreeSize returns the first run of size free values the validation
// accepts.
func (r *table[T]) findFreeSize(size uint64) (interval.Interval[T], error) {
	if size == 0 {
		return interval.Interval[T]{}, errors.Wrap(interval.ErrEmpty, "size 0")
	}
	free := r.iterateFree()
	for free.Next() {
		gap := free.Interval()
		for v, ok := gap.Start(), true; ok && gap.HasValue(v); v, ok = r.universe.Domain().Next(v) {
			iv, err := r.sized(v, size)
			if err != nil || !gap.IncludesValue(iv) {
				// later starts in this gap only leave less room
				break
			}
			if r.accepts(iv) {
				return iv, nil
			}
		}
	}
	return interval.Interval[T]{}, errors.Wrapf(ErrExhausted, "table %s, size %d", r.name, size)
}

func (r *table[T]) FindByRelation(rel interval.Relation, query interval.Interval[T]) Entries[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	var entries Entries[T]
	for _, e := range r.entries {
		if e.Interval().Is(rel, query) {
			entries = append(entries, e)
		}
	}
	return entries
}

func (r *table[T]) add(iv interval.Interval[T], l labels.Set, init bool) error {
	if err := r.validate(iv, init); err != nil {
		r.metrics.rejects.Inc()
		return err
	}
	if e, ok := r.overlapping(iv); ok {
		r.metrics.rejects.Inc()
		return errors.Wrapf(ErrOverlap, "interval %s, claimed %s", iv, e.Interval())
	}
	i := r.search(iv.Start())
	r.entries = append(r.entries, nil)
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = NewEntry(iv, l)

	r.metrics.claims.Inc()
	r.metrics.entries.Store(int64(len(r.entries)))
	r.log.V(1).Info("claimed", "interval", iv.String(), "labels", r.entries[i].Labels().String())
	return nil
}

func (r *table[T]) update(iv interval.Interval[T], l labels.Set) error {
	i := r.exact(iv)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "interval %s", iv)
	}
	r.entries[i] = NewEntry(r.entries[i].Interval(), l)
	return nil
}

func (r *table[T]) delete(iv interval.Interval[T]) error {
	i := r.exact(iv)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "interval %s", iv)
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)

	r.metrics.releases.Inc()
	r.metrics.entries.Store(int64(len(r.entries)))
	r.log.V(1).Info("released", "interval", iv.String())
	return nil
}

func (r *table[T]) GetAll() Entries[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(Entries[T], 0, len(r.entries))
	iter := r.iterate()
	for iter.Next() {
		entries = append(entries, iter.Value())
	}
	return entries
}

func (r *table[T]) GetByLabel(selector labels.Selector) Entries[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	var entries Entries[T]
	iter := r.iterate()
	for iter.Next() {
		if selector.Matches(iter.Value().Labels()) {
			entries = append(entries, iter.Value())
		}
	}
	return entries
}
