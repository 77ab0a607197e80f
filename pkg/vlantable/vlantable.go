package vlantable

import (
	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/intervaltable"
	"k8s.io/apimachinery/pkg/labels"
)

type VLANTable interface {
	Get(id uint16) (intervaltable.Entry[uint16], error)
	Claim(id uint16, d labels.Set) error
	ClaimRange(start, end uint16, d labels.Set) error
	ClaimDynamic(d labels.Set) (uint16, error)
	ClaimSize(size uint16, d labels.Set) (interval.Interval[uint16], error)
	Release(id uint16) error
	ReleaseRange(start, end uint16) error
	Update(id uint16, d labels.Set) error

	Count() int
	Has(id uint16) bool

	IsFree(id uint16) bool
	FindFree() (uint16, error)
	FindFreeSize(size uint16) (interval.Interval[uint16], error)

	GetAll() intervaltable.Entries[uint16]
	GetByLabel(selector labels.Selector) intervaltable.Entries[uint16]
}

const (
	untaggedVLAN = 0
	defaultVLAN  = 1
	reservedVLAN = 4095
)

var vlans = interval.Must(interval.Closed[uint16](0, 4095))

var initEntries = intervaltable.Entries[uint16]{
	intervaltable.NewEntry(point(untaggedVLAN), labels.Set{"type": "untagged", "status": "reserved"}),
	intervaltable.NewEntry(point(defaultVLAN), labels.Set{"type": "default", "status": "reserved"}),
	intervaltable.NewEntry(point(reservedVLAN), labels.Set{"type": "reserved", "status": "reserved"}),
}

func point(id uint16) interval.Interval[uint16] {
	return interval.Point(interval.Integers[uint16](), id)
}

func New(opts ...intervaltable.Option) (VLANTable, error) {
	t, err := intervaltable.NewTable[uint16](
		"vlan",
		vlans,
		initEntries,
		func(iv interval.Interval[uint16]) error {
			switch {
			case iv.HasValue(untaggedVLAN):
				return errors.Newf("VLAN %d is the untagged VLAN, cannot be added to the database", untaggedVLAN)
			case iv.HasValue(defaultVLAN):
				return errors.Newf("VLAN %d is the default VLAN, cannot be added to the database", defaultVLAN)
			case iv.HasValue(reservedVLAN):
				return errors.Newf("VLAN %d is reserved, cannot be added to the database", reservedVLAN)
			}
			return nil
		},
		opts...,
	)
	if err != nil {
		return nil, err
	}
	return &vlanTable{
		table: t,
	}, nil
}

type vlanTable struct {
	table intervaltable.Table[uint16]
}

// Get returns the entry holding id, which may be a range claim.
func (r *vlanTable) Get(id uint16) (intervaltable.Entry[uint16], error) {
	return r.table.GetByValue(id)
}

func (r *vlanTable) Claim(id uint16, d labels.Set) error {
	if !r.table.IsFree(point(id)) {
		return errors.Newf("id %d is already claimed", id)
	}
	return r.table.Claim(point(id), d)
}

func (r *vlanTable) ClaimRange(start, end uint16, d labels.Set) error {
	iv, err := interval.Closed(start, end)
	if err != nil {
		return err
	}
	return r.table.Claim(iv, d)
}

func (r *vlanTable) ClaimDynamic(d labels.Set) (uint16, error) {
	e, err := r.table.ClaimDynamic(d)
	if err != nil {
		return 0, err
	}
	return e.Interval().Start(), nil
}

// ClaimSize claims the first run of size consecutive free VLANs.
func (r *vlanTable) ClaimSize(size uint16, d labels.Set) (interval.Interval[uint16], error) {
	e, err := r.table.ClaimSize(uint64(size), d)
	if err != nil {
		return interval.Interval[uint16]{}, err
	}
	return e.Interval(), nil
}

func (r *vlanTable) Release(id uint16) error {
	return r.table.Release(point(id))
}

func (r *vlanTable) ReleaseRange(start, end uint16) error {
	iv, err := interval.Closed(start, end)
	if err != nil {
		return err
	}
	return r.table.Release(iv)
}

func (r *vlanTable) Update(id uint16, d labels.Set) error {
	return r.table.Update(point(id), d)
}

func (r *vlanTable) Count() int {
	return r.table.Count()
}

func (r *vlanTable) Has(id uint16) bool {
	_, err := r.table.GetByValue(id)
	return err == nil
}

func (r *vlanTable) IsFree(id uint16) bool {
	return r.table.IsFree(point(id))
}

func (r *vlanTable) FindFree() (uint16, error) {
	return r.table.FindFree()
}

func (r *vlanTable) FindFreeSize(size uint16) (interval.Interval[uint16], error) {
	return r.table.FindFreeSize(uint64(size))
}

func (r *vlanTable) GetAll() intervaltable.Entries[uint16] {
	return r.table.GetAll()
}

func (r *vlanTable) GetByLabel(selector labels.Selector) intervaltable.Entries[uint16] {
	return r.table.GetByLabel(selector)
}
