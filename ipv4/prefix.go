package ipv4

import (
	"fmt"
	"net"

	"github.com/gopherset/prefixset/pfxerr"
)

// MinLength and MaxLength bound a valid IPv4 prefix length.
const (
	MinLength uint8 = 0
	MaxLength uint8 = 32
)

// Prefix represents a canonical IPv4 prefix: an address together with a
// length, with every bit below length forced to zero (spec invariant 1).
// The zero value of a Prefix is "0.0.0.0/0".
type Prefix struct {
	addr   Address
	length uint8
}

// NewPrefix returns the canonical prefix with the given address and length,
// truncating any host bits. It fails with pfxerr.InvalidLength if length is
// out of [0, 32].
func NewPrefix(addr Address, length int) (Prefix, error) {
	if length < 0 || int(MaxLength) < length {
		return Prefix{}, pfxerr.New(pfxerr.InvalidLength,
			fmt.Sprintf("ipv4 prefix length %d out of range [0,32]", length))
	}
	mask := lengthToMask(length)
	return Prefix{
		addr:   Address{addr.ui & mask.ui},
		length: uint8(length),
	}, nil
}

// ParsePrefix parses a prefix in CIDR notation (e.g. "192.0.2.0/24").
func ParsePrefix(s string) (Prefix, error) {
	ip, ipNet, err := net.ParseCIDR(s)
	if err != nil {
		return Prefix{}, pfxerr.Wrap(pfxerr.ParseAddress, fmt.Sprintf("failed to parse prefix %q", s), err)
	}
	addr, aerr := AddressFromNetIP(ip)
	if aerr != nil {
		return Prefix{}, pfxerr.Wrap(pfxerr.AddressFamily, "failed to convert parsed address", aerr)
	}
	mask, merr := MaskFromNetIPMask(ipNet.Mask)
	if merr != nil {
		return Prefix{}, pfxerr.Wrap(pfxerr.ParseAddress, fmt.Sprintf("prefix %q is not IPv4", s), merr)
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

// bits returns the canonical network bits as a uint32.
func (p Prefix) bits() uint32 {
	return p.addr.ui
}

// subprefixAt returns the `index`-th subprefix of p at the deeper `length`,
// enumerated in address order. Used by remove's deaggregation step to
// materialize each length-1-deeper child of p (spec §4.3.2).
func (p Prefix) subprefixAt(length uint8, index uint32) Prefix {
	shift := addressSize - int(length)
	addr := p.addr.ui | (index << uint(shift))
	return Prefix{Address{addr}, length}
}

// numSubprefixesAt returns 2^(length-p.length): the number of distinct
// subprefixes of p at the given (deeper) length.
func (p Prefix) numSubprefixesAt(length uint8) uint64 {
	return uint64(1) << (length - p.length)
}

// toNode wraps p as a singleton-length data node, satisfying Member.
func (p Prefix) toNode() *node {
	return newDataNode(p, SingletonGlue(p.length))
}
