package ipv6

import (
	"fmt"
	"net"
)

// SIZE is the number of bits that an IPv6 address takes.
const (
	SIZE        int = 128
	addressSize     = 128
)

// Address represents an IPv6 address as a 128 bit unsigned integer.
type Address struct {
	bits uint128
}

// AddressFromUint64 returns the IPv6 address from its two 64 bit halves,
// high-order first.
func AddressFromUint64(high, low uint64) Address {
	return Address{uint128{high, low}}
}

// AddressFromBytes returns the IPv6 address of the given 16 bytes, ordered
// from highest to lowest significance.
func AddressFromBytes(s []byte) Address {
	return Address{Uint128FromBytes(s)}
}

// AddressFromNetIP converts a net.IP holding an IPv6 address to an Address.
func AddressFromNetIP(ip net.IP) (Address, error) {
	return fromSlice(ip.To16())
}

// ParseAddress returns the address represented by `address` in standard
// IPv6 notation. If the address cannot be parsed, error is non-nil and the
// address returned must be ignored.
func ParseAddress(address string) (Address, error) {
	netIP := net.ParseIP(address)
	if netIP == nil {
		return Address{}, fmt.Errorf("failed to parse IPv6: %s", address)
	}
	netIPv6 := netIP.To16()
	if netIPv6 == nil || netIP.To4() != nil {
		return Address{}, fmt.Errorf("address is not IPv6: %s", address)
	}
	return AddressFromNetIP(netIPv6)
}

// ToNetIP returns a net.IP representation of the address which always has 16 bytes.
func (me Address) ToNetIP() net.IP {
	return net.IP(me.bits.ToBytes())
}

// Equal reports whether this IPv6 address is the same as other.
func (me Address) Equal(other Address) bool {
	return me == other
}

// LessThan reports whether this IPv6 address comes strictly before `other`
// lexicographically.
func (me Address) LessThan(other Address) bool {
	return me.bits.Compare(other.bits) < 0
}

// Prefix returns a host prefix (/128) with the address.
func (me Address) Prefix() Prefix {
	return Prefix{me, MaxLength}
}

// String returns a string representing the address in IPv6 notation.
func (me Address) String() string {
	return me.ToNetIP().String()
}

// Uint64 returns the address as its two 64 bit halves, high-order first.
func (me Address) Uint64() (high, low uint64) {
	return me.bits.Uint64()
}

// fromSlice returns the IPv6 address from a slice of 16 bytes or an error
// if the slice is the wrong size.
func fromSlice(s []byte) (Address, error) {
	if s == nil {
		return Address{}, fmt.Errorf("failed to parse nil ip")
	}
	if len(s) != 16 {
		return Address{}, fmt.Errorf("failed to parse ip because slice size is not equal to 16")
	}
	return AddressFromBytes(s), nil
}
