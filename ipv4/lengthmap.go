package ipv4

import "math/bits"

// lengthMapMask covers bit indices [0, MaxLength], i.e. 33 bits.
const lengthMapMask = uint64(1)<<(MaxLength+1) - 1

// LengthMap is a bitset indexed by prefix length 0..=32. Bit ℓ records a
// fact about length ℓ; what that fact means depends on where the map is
// used (see GlueMap).
type LengthMap struct {
	bits uint64
}

// ZeroLengthMap is the empty LengthMap.
var ZeroLengthMap = LengthMap{}

// SingletonLength returns a LengthMap with only bit length set.
func SingletonLength(length uint8) LengthMap {
	return LengthMap{bits: uint64(1) << length}
}

// LengthMapFromRange returns a LengthMap with exactly the bits in
// [lower, upper] set.
func LengthMapFromRange(lower, upper uint8) LengthMap {
	if lower > upper {
		return LengthMap{}
	}
	width := upper - lower + 1
	var span uint64
	if width >= 64 {
		span = ^uint64(0)
	} else {
		span = uint64(1)<<width - 1
	}
	return LengthMap{bits: span << lower}
}

// IsZero reports whether no bit is set.
func (m LengthMap) IsZero() bool {
	return m.bits == 0
}

// Equal reports whether m and other have the same bits set.
func (m LengthMap) Equal(other LengthMap) bool {
	return m.bits == other.bits
}

// Test reports whether bit length is set.
func (m LengthMap) Test(length uint8) bool {
	return m.bits&(uint64(1)<<length) != 0
}

// Set returns m with bit length set.
func (m LengthMap) Set(length uint8) LengthMap {
	return LengthMap{bits: m.bits | (uint64(1) << length)}
}

// Clear returns m with bit length cleared.
func (m LengthMap) Clear(length uint8) LengthMap {
	return LengthMap{bits: m.bits &^ (uint64(1) << length)}
}

// And returns the bitwise AND of m and other.
func (m LengthMap) And(other LengthMap) LengthMap {
	return LengthMap{bits: m.bits & other.bits}
}

// Or returns the bitwise OR of m and other.
func (m LengthMap) Or(other LengthMap) LengthMap {
	return LengthMap{bits: m.bits | other.bits}
}

// AndNot returns m with every bit set in other cleared.
func (m LengthMap) AndNot(other LengthMap) LengthMap {
	return LengthMap{bits: m.bits &^ other.bits}
}

// Not returns the complement of m over [0, MaxLength].
func (m LengthMap) Not() LengthMap {
	return LengthMap{bits: ^m.bits & lengthMapMask}
}

// CountOnes returns the number of bits set.
func (m LengthMap) CountOnes() int {
	return bits.OnesCount64(m.bits)
}

// FirstOneAtOrAfter returns the lowest set bit index that is >= from, or
// ok == false if no such bit exists.
func (m LengthMap) FirstOneAtOrAfter(from uint8) (length uint8, ok bool) {
	shifted := m.bits >> from
	if shifted == 0 {
		return 0, false
	}
	return from + uint8(bits.TrailingZeros64(shifted)), true
}

// FirstZeroAtOrAfter returns the lowest unset bit index (within
// [0, MaxLength]) that is >= from, or ok == false if every bit from
// from through MaxLength is set.
func (m LengthMap) FirstZeroAtOrAfter(from uint8) (length uint8, ok bool) {
	if from > MaxLength {
		return 0, false
	}
	validMask := (lengthMapMask >> from) << from
	inverted := (^m.bits) & validMask
	if inverted == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros64(inverted)), true
}

// NextRange returns the first maximal contiguous run of set bits whose
// lower bound is >= from, as an inclusive [lower, upper] length range.
// ok is false if no bit at or above from is set.
func (m LengthMap) NextRange(from uint8) (lower, upper uint8, ok bool) {
	lower, ok = m.FirstOneAtOrAfter(from)
	if !ok {
		return 0, 0, false
	}
	zero, zok := m.FirstZeroAtOrAfter(lower)
	if !zok {
		upper = MaxLength
	} else {
		upper = zero - 1
	}
	return lower, upper, true
}
