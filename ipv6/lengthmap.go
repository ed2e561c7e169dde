package ipv6

import "math/bits"

// LengthMap is a bitset over prefix lengths 0..=128: 129 significant bits
// packed into three 64 bit words. Word 2 only ever has bit 0 (length 128)
// set.
type LengthMap struct {
	words [3]uint64
}

var ZeroLengthMap = LengthMap{}

func wordIndex(length uint8) int  { return int(length) / 64 }
func bitOffset(length uint8) uint { return uint(length) % 64 }

// validWordMask returns the bits of word w that correspond to a real
// length: words 0 and 1 are fully valid (lengths 0-63 and 64-127), word 2
// only has bit 0 valid (length 128).
func validWordMask(w int) uint64 {
	if w == 2 {
		return 1
	}
	return ^uint64(0)
}

func SingletonLength(length uint8) LengthMap {
	var m LengthMap
	m.words[wordIndex(length)] = uint64(1) << bitOffset(length)
	return m
}

func LengthMapFromRange(lower, upper uint8) LengthMap {
	if lower > upper {
		return LengthMap{}
	}
	var m LengthMap
	for length := lower; ; length++ {
		m.words[wordIndex(length)] |= uint64(1) << bitOffset(length)
		if length == upper {
			break
		}
	}
	return m
}

func (m LengthMap) IsZero() bool { return m.words == [3]uint64{} }

func (m LengthMap) Equal(other LengthMap) bool { return m.words == other.words }

func (m LengthMap) Test(length uint8) bool {
	return m.words[wordIndex(length)]&(uint64(1)<<bitOffset(length)) != 0
}

func (m LengthMap) Set(length uint8) LengthMap {
	m.words[wordIndex(length)] |= uint64(1) << bitOffset(length)
	return m
}

func (m LengthMap) Clear(length uint8) LengthMap {
	m.words[wordIndex(length)] &^= uint64(1) << bitOffset(length)
	return m
}

func (m LengthMap) And(other LengthMap) LengthMap {
	return LengthMap{[3]uint64{m.words[0] & other.words[0], m.words[1] & other.words[1], m.words[2] & other.words[2]}}
}

func (m LengthMap) Or(other LengthMap) LengthMap {
	return LengthMap{[3]uint64{m.words[0] | other.words[0], m.words[1] | other.words[1], m.words[2] | other.words[2]}}
}

func (m LengthMap) AndNot(other LengthMap) LengthMap {
	return LengthMap{[3]uint64{m.words[0] &^ other.words[0], m.words[1] &^ other.words[1], m.words[2] &^ other.words[2]}}
}

func (m LengthMap) Not() LengthMap {
	return LengthMap{[3]uint64{^m.words[0], ^m.words[1], ^m.words[2] & validWordMask(2)}}
}

func (m LengthMap) CountOnes() int {
	return bits.OnesCount64(m.words[0]) + bits.OnesCount64(m.words[1]) + bits.OnesCount64(m.words[2])
}

// FirstOneAtOrAfter returns the smallest set length >= from, if any.
func (m LengthMap) FirstOneAtOrAfter(from uint8) (length uint8, ok bool) {
	if from > MaxLength {
		return 0, false
	}
	startWord := wordIndex(from)
	for w := startWord; w < len(m.words); w++ {
		word := m.words[w]
		if w == startWord {
			word >>= bitOffset(from)
			if word != 0 {
				return from + uint8(bits.TrailingZeros64(word)), true
			}
			continue
		}
		if word != 0 {
			return uint8(w*64) + uint8(bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// FirstZeroAtOrAfter returns the smallest unset length >= from, if any
// remains within [0, 128].
func (m LengthMap) FirstZeroAtOrAfter(from uint8) (length uint8, ok bool) {
	if from > MaxLength {
		return 0, false
	}
	startWord := wordIndex(from)
	for w := startWord; w < len(m.words); w++ {
		valid := validWordMask(w)
		if w == startWord {
			valid &= (^uint64(0)) << bitOffset(from)
		}
		inverted := (^m.words[w]) & valid
		if inverted != 0 {
			return uint8(w*64) + uint8(bits.TrailingZeros64(inverted)), true
		}
	}
	return 0, false
}

// NextRange returns the next maximal contiguous run of set lengths at or
// after from.
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
