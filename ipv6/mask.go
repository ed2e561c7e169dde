package ipv6

import (
	"fmt"
	"math/bits"
	"net"
)

const maxUint64 = ^uint64(0)

// Mask represents an IPv6 prefix mask. It has any number of leading 1s and
// then the remaining bits are 0s up to 128 bits. It can be all zeroes or
// all ones.
// The zero value of a Mask is "/0".
type Mask struct {
	bits uint128
}

// MaskFromLength converts the given length into a mask with that number of leading 1s.
func MaskFromLength(length int) (Mask, error) {
	if length < 0 || addressSize < length {
		return Mask{}, fmt.Errorf("failed to create Mask where length %d isn't between 0 and 128", length)
	}
	return lengthToMask(length), nil
}

// MaskFromBytes returns the mask represented by the given 16 bytes, ordered
// from highest to lowest significance.
func MaskFromBytes(s []byte) (Mask, error) {
	m := Mask{Uint128FromBytes(s)}
	if !m.valid() {
		return Mask{}, fmt.Errorf("failed to create a valid mask from bytes: %v", s)
	}
	return m, nil
}

// MaskFromUint64 returns the mask from its two 64 bit halves, high-order first.
func MaskFromUint64(high, low uint64) (Mask, error) {
	m := Mask{uint128{high, low}}
	if !m.valid() {
		return Mask{}, fmt.Errorf("failed to create a valid mask from uint64: %x %x", high, low)
	}
	return m, nil
}

// MaskFromNetIPMask converts a net.IPMask to a Mask.
func MaskFromNetIPMask(mask net.IPMask) (Mask, error) {
	ones, bits := mask.Size()
	if bits != addressSize {
		return Mask{}, fmt.Errorf("failed to convert IPMask with incorrect size")
	}
	m, err := MaskFromLength(ones)
	if err != nil {
		return Mask{}, err
	}
	if !m.valid() {
		return Mask{}, fmt.Errorf("failed to create a valid mask from net.IPMask: %v", mask)
	}
	return m, nil
}

// Length returns the number of leading 1s in the mask.
func (me Mask) Length() int {
	if me.bits.high != maxUint64 {
		return bits.LeadingZeros64(^me.bits.high)
	}
	return 64 + bits.LeadingZeros64(^me.bits.low)
}

// ToNetIPMask returns the net.IPMask representation of this Mask.
func (me Mask) ToNetIPMask() net.IPMask {
	return net.CIDRMask(me.Length(), addressSize)
}

// String returns the address representation of this Mask.
func (me Mask) String() string {
	return Address{me.bits}.String()
}

func (me Mask) valid() bool {
	length := me.Length()
	return length == bits.OnesCount64(me.bits.high)+bits.OnesCount64(me.bits.low)
}

// lengthToMask returns the mask with `length` leading 1 bits, the rest 0.
func lengthToMask(length int) Mask {
	switch {
	case length <= 64:
		return Mask{uint128{high: maxUint64 << (64 - length), low: 0}}
	default:
		return Mask{uint128{high: maxUint64, low: maxUint64 << (64 - (length - 64))}}
	}
}
