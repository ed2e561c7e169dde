package ipv6

import (
	"fmt"
	"net"

	"github.com/gopherset/prefixset/pfxerr"
)

// MinLength and MaxLength bound a valid IPv6 prefix length.
const (
	MinLength uint8 = 0
	MaxLength uint8 = 128
)

// Prefix represents a canonical IPv6 prefix: an address together with a
// length, with every bit below length forced to zero (spec invariant 1).
// The zero value of a Prefix is "::/0".
type Prefix struct {
	addr   Address
	length uint8
}

// NewPrefix returns the canonical prefix with the given address and length,
// truncating any host bits. It fails with pfxerr.InvalidLength if length is
// out of [0, 128].
func NewPrefix(addr Address, length int) (Prefix, error) {
	if length < 0 || int(MaxLength) < length {
		return Prefix{}, pfxerr.New(pfxerr.InvalidLength,
			fmt.Sprintf("ipv6 prefix length %d out of range [0,128]", length))
	}
	mask := lengthToMask(length)
	return Prefix{
		addr:   Address{addr.bits.And(mask.bits)},
		length: uint8(length),
	}, nil
}

// ParsePrefix parses a prefix in CIDR notation (e.g. "2001:db8::/32").
func ParsePrefix(s string) (Prefix, error) {
	ip, ipNet, err := net.ParseCIDR(s)
	if err != nil {
		return Prefix{}, pfxerr.Wrap(pfxerr.ParseAddress, fmt.Sprintf("failed to parse prefix %q", s), err)
	}
	addr, aerr := AddressFromNetIP(ip)
	if aerr != nil {
		return Prefix{}, pfxerr.Wrap(pfxerr.AddressFamily, "failed to convert parsed address", aerr)
	}
	if ip.To4() != nil {
		return Prefix{}, pfxerr.New(pfxerr.ParseAddress, fmt.Sprintf("prefix %q is not IPv6", s))
	}
	mask, merr := MaskFromNetIPMask(ipNet.Mask)
	if merr != nil {
		return Prefix{}, pfxerr.Wrap(pfxerr.ParseAddress, fmt.Sprintf("prefix %q is not IPv6", s), merr)
	}
	return NewPrefix(addr, mask.Length())
}

// Address returns the network address of the prefix (host bits are zero).
func (p Prefix) Address() Address {
	return p.addr
}

// Length returns the prefix length.
func (p Prefix) Length() uint8 {
	return p.length
}

// String renders the prefix in CIDR notation.
func (p Prefix) String() string {
	return fmt.Sprintf("%s/%d", p.addr, p.length)
}

// ToNetIPNet returns a *net.IPNet representation of this prefix.
func (p Prefix) ToNetIPNet() *net.IPNet {
	return &net.IPNet{
		IP:   p.addr.ToNetIP(),
		Mask: lengthToMask(int(p.length)).ToNetIPMask(),
	}
}

// bits returns the canonical network bits.
func (p Prefix) bits() uint128 {
	return p.addr.bits
}

// subprefixAt returns the `index`-th subprefix of p at the deeper `length`,
// enumerated in address order. Used by remove's deaggregation step to
// materialize each length-1-deeper child of p (spec §4.3.2), and by range
// expansion. index is limited to 64 bits: no caller ever needs to address
// more than 2^64 subprefixes of a single prefix individually.
func (p Prefix) subprefixAt(length uint8, index uint64) Prefix {
	shift := addressSize - int(length)
	offset := uint128{0, index}.LeftShift(shift)
	return Prefix{Address{p.addr.bits.Or(offset)}, length}
}

// numSubprefixesAt returns 2^(length-p.length): the number of distinct
// subprefixes of p at the given (deeper) length. Saturates at 0 once the
// exponent reaches 64, since no caller enumerates a range that wide.
func (p Prefix) numSubprefixesAt(length uint8) uint64 {
	diff := length - p.length
	if diff >= 64 {
		return 0
	}
	return uint64(1) << diff
}

// toNode wraps p as a singleton-length data node, satisfying Member.
func (p Prefix) toNode() *node {
	return newDataNode(p, SingletonGlue(p.length))
}
