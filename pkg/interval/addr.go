package interval

import (
	"net/netip"

	"github.com/cockroachdb/errors"
	"go4.org/netipx"
)

// ErrMixedFamily is returned for address intervals whose bounds are of
// different IP families.
var ErrMixedFamily = errors.New("mixed address families")

type addrs struct{}

// Addrs returns the Domain of IP addresses. IPv4 and IPv6 addresses never
// share an interval.
func Addrs() Domain[netip.Addr] { return addrs{} }

func (addrs) Compare(a, b netip.Addr) int { return a.Compare(b) }

func (addrs) Next(v netip.Addr) (netip.Addr, bool) {
	n := v.Next()
	return n, n.IsValid()
}

func (addrs) Validate(start, end netip.Addr) error {
	if !start.IsValid() || !end.IsValid() {
		return errors.Wrapf(ErrInvalid, "address range %s-%s", start, end)
	}
	if start.Is4() != end.Is4() {
		return errors.Wrapf(ErrMixedFamily, "address range %s-%s", start, end)
	}
	if start.Zone() != "" || end.Zone() != "" {
		return errors.Wrapf(ErrInvalid, "zoned address range %s-%s", start, end)
	}
	return nil
}

// NewAddr returns the address interval from start to end.
func NewAddr(start, end netip.Addr, endExclusive bool) (Interval[netip.Addr], error) {
	return New(Addrs(), start, end, endExclusive)
}

// FromIPRange converts an inclusive netipx range.
func FromIPRange(r netipx.IPRange) (Interval[netip.Addr], error) {
	if !r.IsValid() {
		return Interval[netip.Addr]{}, errors.Wrapf(ErrInvalid, "ip range %s", r)
	}
	return NewAddr(r.From(), r.To(), false)
}

// IPRange returns iv as an inclusive netipx range.
func IPRange(iv Interval[netip.Addr]) netipx.IPRange {
	to := iv.End()
	if iv.EndExclusive() {
		to = to.Prev()
	}
	return netipx.IPRangeFrom(iv.Start(), to)
}

// ParseAddr parses an address interval, see Parse for the accepted
// forms. Prefixes such as 10.0.0.0/24 are accepted as well.
func ParseAddr(s string) (Interval[netip.Addr], error) {
	if p, err := netip.ParsePrefix(s); err == nil {
		return FromIPRange(netipx.RangeOfPrefix(p))
	}
	return Parse(Addrs(), s, netip.ParseAddr)
}
