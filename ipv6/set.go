package ipv6

// Member is implemented by Prefix and PrefixRange: anything that can be
// wrapped as a node and merged into or subtracted from a PrefixSet. The
// toNode method is unexported, so no type outside this package can
// implement Member.
type Member interface {
	toNode() *node
}

// PrefixSet is a canonical set of IPv6 prefixes, represented internally
// as an aggregated radix tree. The zero value is the empty set and is
// ready to use.
type PrefixSet struct {
	root *node
}

// NewPrefixSet returns a new, empty set.
func NewPrefixSet() *PrefixSet {
	return &PrefixSet{}
}

// Universe returns the set of every IPv6 prefix: the single range
// ::/0,0,128.
func Universe() *PrefixSet {
	zero, err := NewPrefix(Address{}, 0)
	if err != nil {
		panic(err)
	}
	return &PrefixSet{root: newDataNode(zero, GlueMapFromRange(MinLength, MaxLength))}
}

func (s *PrefixSet) clone() *PrefixSet {
	return &PrefixSet{root: s.root}
}

// Insert merges item into the set and re-aggregates. Returns s for
// chaining.
func (s *PrefixSet) Insert(item Member) *PrefixSet {
	s.root = addNodes(s.root, item.toNode())
	s.root = aggregateNode(s.root, ZeroGlue)
	return s
}

// InsertFrom merges every item in items and re-aggregates once at the
// end: far cheaper than calling Insert in a loop. Returns s for chaining.
func (s *PrefixSet) InsertFrom(items []Member) *PrefixSet {
	for _, item := range items {
		s.root = addNodes(s.root, item.toNode())
	}
	s.root = aggregateNode(s.root, ZeroGlue)
	return s
}

// Remove subtracts item from the set and re-aggregates. Returns s for
// chaining.
func (s *PrefixSet) Remove(item Member) *PrefixSet {
	s.root = removeNodes(s.root, item.toNode())
	s.root = aggregateNode(s.root, ZeroGlue)
	return s
}

// RemoveFrom subtracts every item in items and re-aggregates once at the
// end. Returns s for chaining.
func (s *PrefixSet) RemoveFrom(items []Member) *PrefixSet {
	for _, item := range items {
		s.root = removeNodes(s.root, item.toNode())
	}
	s.root = aggregateNode(s.root, ZeroGlue)
	return s
}

// Contains reports whether p is a member of the set.
func (s *PrefixSet) Contains(p Prefix) bool {
	if s.root == nil {
		return false
	}
	return searchNode(s.root, p.toNode())
}

// Len returns the number of prefixes denoted by the set: every glue map
// bit at length ℓ on a node with base length b stands for 2^(ℓ-b)
// subprefixes, summed across every node in the tree. A length 64 or more
// bits below its node's base adds nothing (numSubprefixesAt returns 0
// there), and the int sum overflows at 2^63, so the result is not the true
// count for sets holding such ranges: Universe().Len() returns -1.
func (s *PrefixSet) Len() int {
	count := 0
	s.root.treeRanges(func(r PrefixRange) bool {
		for length := r.Lower(); ; length++ {
			count += int(r.Base().numSubprefixesAt(length))
			if length == r.Upper() {
				break
			}
		}
		return true
	})
	return count
}

// IsEmpty reports whether the set holds no members.
func (s *PrefixSet) IsEmpty() bool {
	return s.root == nil
}

// Clear drops every member. Returns s for chaining.
func (s *PrefixSet) Clear() *PrefixSet {
	s.root = nil
	return s
}

// Ranges returns every PrefixRange in the set, in tree pre-order.
func (s *PrefixSet) Ranges() []PrefixRange {
	var result []PrefixRange
	s.root.treeRanges(func(r PrefixRange) bool {
		result = append(result, r)
		return true
	})
	return result
}

// Prefixes returns every individual Prefix denoted by the set, expanding
// each range in turn.
func (s *PrefixSet) Prefixes() []Prefix {
	var result []Prefix
	s.root.treeRanges(func(r PrefixRange) bool {
		return expandRange(r, func(p Prefix) bool {
			result = append(result, p)
			return true
		})
	})
	return result
}

// And returns the intersection of s and other.
func (s *PrefixSet) And(other *PrefixSet) *PrefixSet {
	if s.root == nil || other.root == nil {
		return NewPrefixSet()
	}
	root := aggregateNode(intersectNodes(s.root, other.root), ZeroGlue)
	return &PrefixSet{root: root}
}

// Or returns the union of s and other.
func (s *PrefixSet) Or(other *PrefixSet) *PrefixSet {
	if s.root == nil {
		return other.clone()
	}
	if other.root == nil {
		return s.clone()
	}
	root := aggregateNode(addNodes(s.root, other.root), ZeroGlue)
	return &PrefixSet{root: root}
}

// Sub returns s with every member of other removed.
func (s *PrefixSet) Sub(other *PrefixSet) *PrefixSet {
	if other.root == nil {
		return s.clone()
	}
	root := aggregateNode(removeNodes(s.root, other.root), ZeroGlue)
	return &PrefixSet{root: root}
}

// Xor returns the symmetric difference of s and other: (s|other) -
// (s&other).
func (s *PrefixSet) Xor(other *PrefixSet) *PrefixSet {
	return s.Or(other).Sub(s.And(other))
}

// Not returns the complement of s within Universe().
func (s *PrefixSet) Not() *PrefixSet {
	return Universe().Sub(s)
}

// Equal reports whether s and other hold exactly the same members.
func (s *PrefixSet) Equal(other *PrefixSet) bool {
	a, b := s.Ranges(), other.Ranges()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// LessEqual reports whether every prefix in s is also in other.
func (s *PrefixSet) LessEqual(other *PrefixSet) bool {
	return s.Sub(other).IsEmpty()
}

// Less reports whether s is a proper subset of other.
func (s *PrefixSet) Less(other *PrefixSet) bool {
	return s.LessEqual(other) && !other.LessEqual(s)
}
