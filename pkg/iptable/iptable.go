package iptable

import (
	"net/netip"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/intervaltable"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

type IPTable interface {
	Get(addr string) (intervaltable.Entry[netip.Addr], error)
	Claim(addrs string, d labels.Set) error
	ClaimDynamic(d labels.Set) (netip.Addr, error)
	Release(addrs string) error
	Update(addrs string, d labels.Set) error

	Count() int
	Has(addr string) bool

	IsFree(addrs string) bool
	FindFree() (netip.Addr, error)
	Overlapping(addrs string) (intervaltable.Entries[netip.Addr], error)

	GetAll() intervaltable.Entries[netip.Addr]
	GetByLabel(selector labels.Selector) intervaltable.Entries[netip.Addr]
}

func New(ipRange netipx.IPRange, opts ...intervaltable.Option) (IPTable, error) {
	universe, err := interval.FromIPRange(ipRange)
	if err != nil {
		return nil, err
	}
	t, err := intervaltable.NewTable[netip.Addr](ipRange.String(), universe, nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return &ipTable{
		table:   t,
		ipRange: ipRange,
	}, nil
}

type ipTable struct {
	table   intervaltable.Table[netip.Addr]
	ipRange netipx.IPRange
}

// Get returns the entry holding addr.
func (r *ipTable) Get(addr string) (intervaltable.Entry[netip.Addr], error) {
	ip, err := r.validateIP(addr)
	if err != nil {
		return nil, err
	}
	return r.table.GetByValue(ip)
}

func (r *ipTable) Claim(addrs string, d labels.Set) error {
	iv, err := r.validateRange(addrs)
	if err != nil {
		return err
	}
	if !r.table.IsFree(iv) {
		return errors.Newf("claim failed ip %s already claimed", addrs)
	}
	return r.table.Claim(iv, d)
}

func (r *ipTable) ClaimDynamic(d labels.Set) (netip.Addr, error) {
	e, err := r.table.ClaimDynamic(d)
	if err != nil {
		return netip.Addr{}, err
	}
	return e.Interval().Start(), nil
}

func (r *ipTable) Release(addrs string) error {
	iv, err := r.validateRange(addrs)
	if err != nil {
		return err
	}
	return r.table.Release(iv)
}

func (r *ipTable) Update(addrs string, d labels.Set) error {
	iv, err := r.validateRange(addrs)
	if err != nil {
		return err
	}
	if !r.table.Has(iv) {
		return errors.Newf("update failed ip %s not claimed", addrs)
	}
	return r.table.Update(iv, d)
}

func (r *ipTable) Count() int {
	return r.table.Count()
}

func (r *ipTable) Has(addr string) bool {
	ip, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	_, err = r.table.GetByValue(ip)
	return err == nil
}

func (r *ipTable) IsFree(addrs string) bool {
	iv, err := r.validateRange(addrs)
	if err != nil {
		return false
	}
	return r.table.IsFree(iv)
}

func (r *ipTable) FindFree() (netip.Addr, error) {
	return r.table.FindFree()
}

// Overlapping returns the claims sharing at least one address with addrs.
func (r *ipTable) Overlapping(addrs string) (intervaltable.Entries[netip.Addr], error) {
	iv, err := interval.ParseAddr(addrs)
	if err != nil {
		return nil, err
	}
	var entries intervaltable.Entries[netip.Addr]
	iter := r.table.Iterate()
	for iter.Next() {
		if iter.Interval().Overlaps(iv) {
			entries = append(entries, iter.Value())
		}
	}
	return entries, nil
}

func (r *ipTable) GetAll() intervaltable.Entries[netip.Addr] {
	return r.table.GetAll()
}

func (r *ipTable) GetByLabel(selector labels.Selector) intervaltable.Entries[netip.Addr] {
	return r.table.GetByLabel(selector)
}

func (r *ipTable) validateIP(addr string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, errors.Newf("ip address %s is invalid", addr)
	}
	if !r.ipRange.Contains(ip) {
		return netip.Addr{}, errors.Newf("ip address %s, does not fit in the range from %s to %s", addr, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return ip, nil
}

// validateRange accepts a single address, a prefix or an address interval.
func (r *ipTable) validateRange(addrs string) (interval.Interval[netip.Addr], error) {
	iv, err := interval.ParseAddr(addrs)
	if err != nil {
		return interval.Interval[netip.Addr]{}, errors.Wrapf(err, "ip range %s is invalid", addrs)
	}
	if !r.table.Universe().IncludesValue(iv) {
		return interval.Interval[netip.Addr]{}, errors.Newf("ip range %s, does not fit in the range from %s to %s", addrs, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return iv, nil
}
