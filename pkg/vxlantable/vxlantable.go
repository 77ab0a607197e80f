package vxlantable

import (
	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/intervaltable"
	"k8s.io/apimachinery/pkg/labels"
)

// MaxVNI is the largest 24-bit VXLAN network identifier.
const MaxVNI = 1<<24 - 1

type VXLANTable interface {
	Get(id uint32) (intervaltable.Entry[uint32], error)
	Claim(id uint32, d labels.Set) error
	ClaimDynamic(d labels.Set) (uint32, error)
	ClaimSize(size uint32, d labels.Set) (interval.Interval[uint32], error)
	Release(id uint32) error
	Update(id uint32, d labels.Set) error

	Count() int
	Has(id uint32) bool

	IsFree(id uint32) bool
	FindFree() (uint32, error)

	GetAll() intervaltable.Entries[uint32]
}

func New(offset, max uint32, opts ...intervaltable.Option) (VXLANTable, error) {
	if max > MaxVNI {
		return nil, errors.Newf("max vni %d exceeds %d", max, MaxVNI)
	}
	vnis, err := interval.Closed(offset, max)
	if err != nil {
		return nil, errors.Wrapf(err, "vni range %d-%d", offset, max)
	}
	t, err := intervaltable.NewTable[uint32]("vxlan", vnis, nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return &vxlanTable{
		table: t,
	}, nil
}

type vxlanTable struct {
	table intervaltable.Table[uint32]
}

func point(id uint32) interval.Interval[uint32] {
	return interval.Point(interval.Integers[uint32](), id)
}

// Get returns the entry holding id, which may be a ClaimSize block.
func (r *vxlanTable) Get(id uint32) (intervaltable.Entry[uint32], error) {
	return r.table.GetByValue(id)
}

func (r *vxlanTable) Claim(id uint32, d labels.Set) error {
	return r.table.Claim(point(id), d)
}

func (r *vxlanTable) ClaimDynamic(d labels.Set) (uint32, error) {
	e, err := r.table.ClaimDynamic(d)
	if err != nil {
		return 0, err
	}
	return e.Interval().Start(), nil
}

// ClaimSize claims the first block of size consecutive free VNIs.
func (r *vxlanTable) ClaimSize(size uint32, d labels.Set) (interval.Interval[uint32], error) {
	e, err := r.table.ClaimSize(uint64(size), d)
	if err != nil {
		return interval.Interval[uint32]{}, err
	}
	return e.Interval(), nil
}

func (r *vxlanTable) Release(id uint32) error {
	return r.table.Release(point(id))
}

func (r *vxlanTable) Update(id uint32, d labels.Set) error {
	return r.table.Update(point(id), d)
}

func (r *vxlanTable) Count() int {
	return r.table.Count()
}

func (r *vxlanTable) Has(id uint32) bool {
	_, err := r.table.GetByValue(id)
	return err == nil
}

func (r *vxlanTable) IsFree(id uint32) bool {
	return r.table.IsFree(point(id))
}

func (r *vxlanTable) FindFree() (uint32, error) {
	return r.table.FindFree()
}

func (r *vxlanTable) GetAll() intervaltable.Entries[uint32] {
	return r.table.GetAll()
}
