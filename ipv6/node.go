package ipv6

// node is one vertex of the canonical prefix radix tree: a base prefix plus
// the glue map of lengths, relative to that base, for which the tree holds
// aggregated member data. Nodes are copy-on-write: every mutating operation
// returns a (possibly) new node rather than mutating a shared one in place.
type node struct {
	base  Prefix
	glue  GlueMap
	left  *node
	right *node
}

func newDataNode(base Prefix, glue GlueMap) *node {
	return &node{base: base, glue: glue}
}

// makeCopy returns a shallow copy of n, ready for in-place mutation by the
// caller without disturbing any other reference to n.
func (n *node) makeCopy() *node {
	if n == nil {
		return nil
	}
	cp := *n
	return &cp
}

const (
	cmpEqual int = iota
	cmpSubprefix
	cmpSuperprefix
	cmpDivergent
)

// containsPrefix reports whether shorter is a prefix of longer (shorter
// must actually have the smaller length), the number of matching
// high-order bits, and which child slot (0 left, 1 right) longer falls
// under at that common length.
func containsPrefix(shorter, longer Prefix) (matches bool, common uint8, child uint8) {
	mask := lengthToMask(int(shorter.Length()))
	if shorter.bits().And(mask.bits) == longer.bits().And(mask.bits) {
		matches = true
		common = shorter.Length()
	} else {
		common = uint8(shorter.bits().Xor(longer.bits()).LeadingZeros())
	}
	if common < addressSize {
		pivot := uint128{high: 0x8000000000000000}.RightShift(int(common))
		if longer.bits().And(pivot) != (uint128{}) {
			child = 1
		}
	}
	return
}

// compare relates self and other: which is shorter (reversed if other is),
// how many leading bits they share (common), and which child slot the
// longer one falls under relative to the shorter (child).
func compare(self, other Prefix) (result int, reversed bool, common uint8, child uint8) {
	reversed = other.Length() < self.Length()
	var matches bool
	if reversed {
		matches, common, child = containsPrefix(other, self)
	} else {
		matches, common, child = containsPrefix(self, other)
	}
	switch {
	case matches && self.Length() == other.Length():
		result = cmpEqual
	case matches && !reversed:
		result = cmpSubprefix
	case matches && reversed:
		result = cmpSuperprefix
	default:
		result = cmpDivergent
	}
	return
}

// addNodes merges other into self, returning the (possibly new) merged
// root. Neither input is mutated.
func addNodes(self, other *node) *node {
	if self == nil {
		return other
	}
	if other == nil {
		return self
	}
	result, reversed, common, child := compare(self.base, other.base)
	switch result {
	case cmpEqual:
		self = self.makeCopy()
		self.glue = self.glue.Or(other.glue)
		self.left = addNodes(self.left, other.left)
		self.right = addNodes(self.right, other.right)
		return self
	case cmpSubprefix:
		other = other.makeCopy()
		other.glue = other.glue.AndNot(self.glue)
		self = self.makeCopy()
		if child == 0 {
			self.left = addNodes(self.left, other)
		} else {
			self.right = addNodes(self.right, other)
		}
		return self
	case cmpSuperprefix:
		self = self.makeCopy()
		self.glue = self.glue.AndNot(other.glue)
		other = other.makeCopy()
		if child == 0 {
			other.left = addNodes(other.left, self)
		} else {
			other.right = addNodes(other.right, self)
		}
		return other
	default: // cmpDivergent
		glueBase, err := NewPrefix(self.base.Address(), int(common))
		if err != nil {
			panic(err)
		}
		parent := &node{base: glueBase}
		if (child == 1) != reversed {
			parent.left, parent.right = self, other
		} else {
			parent.left, parent.right = other, self
		}
		return parent
	}
}

// removeNodes subtracts every prefix denoted by other's subtree from self.
func removeNodes(self, other *node) *node {
	if self == nil || other == nil {
		return self
	}
	self = removeNodes(self, other.left)
	self = removeNodes(self, other.right)
	return removeOne(self, other)
}

// removeOne subtracts the single range denoted by other's own glue map
// (ignoring other's children) from self.
func removeOne(self, other *node) *node {
	if self == nil {
		return nil
	}
	result, _, _, child := compare(self.base, other.base)
	switch result {
	case cmpEqual, cmpSuperprefix:
		self = self.makeCopy()
		self.glue = self.glue.AndNot(other.glue)
		self.left = removeOne(self.left, other)
		self.right = removeOne(self.right, other)
		return self
	case cmpSubprefix:
		deaggr := self.glue.And(other.glue)
		self = self.makeCopy()
		if !deaggr.IsZero() {
			self.glue = self.glue.AndNot(deaggr)
			childLength := self.base.Length() + 1
			leftBase := self.base.subprefixAt(childLength, 0)
			rightBase := self.base.subprefixAt(childLength, 1)
			self.left = addNodes(self.left, newDataNode(leftBase, deaggr))
			self.right = addNodes(self.right, newDataNode(rightBase, deaggr))
		}
		if child == 0 {
			self.left = removeOne(self.left, other)
		} else {
			self.right = removeOne(self.right, other)
		}
		return self
	default: // cmpDivergent
		return self
	}
}

// aggregateNode re-establishes canonical form: every length bit set on an
// ancestor is cleared from its descendants (mask), and siblings that
// together cover both halves of a length are pulled up and merged into
// their parent's own glue map. Empty nodes are pruned.
func aggregateNode(self *node, mask GlueMap) *node {
	if self == nil {
		return nil
	}
	self = self.makeCopy()
	self.glue = self.glue.AndNot(mask)
	childMask := mask.Or(self.glue)
	self.left = aggregateNode(self.left, childMask)
	self.right = aggregateNode(self.right, childMask)
	if self.left != nil && self.right != nil &&
		self.left.base.Length() == self.base.Length()+1 &&
		self.right.base.Length() == self.base.Length()+1 {
		aggr := self.left.glue.And(self.right.glue)
		if !aggr.IsZero() {
			self.left.glue = self.left.glue.AndNot(aggr)
			self.right.glue = self.right.glue.AndNot(aggr)
			self.glue = self.glue.Or(aggr)
			self.left = cleanNode(self.left)
			self.right = cleanNode(self.right)
		}
	}
	return cleanNode(self)
}

// cleanNode removes a node that no longer carries glue data of its own,
// replacing it with its one surviving child, or nil if it has none. A glue
// node with two children is kept.
func cleanNode(self *node) *node {
	if self == nil {
		return nil
	}
	if !self.glue.IsZero() {
		return self
	}
	switch {
	case self.left == nil && self.right == nil:
		return nil
	case self.left == nil:
		return self.right
	case self.right == nil:
		return self.left
	default:
		return self
	}
}

// searchNode reports whether q (a single range relative to its own base)
// is entirely contained in self.
func searchNode(self, q *node) bool {
	if self == nil {
		return false
	}
	result, _, _, child := compare(self.base, q.base)
	switch result {
	case cmpEqual:
		return self.glue.And(q.glue).Equal(q.glue)
	case cmpSubprefix:
		if self.glue.And(q.glue).Equal(q.glue) {
			return true
		}
		if child == 0 {
			return searchNode(self.left, q)
		}
		return searchNode(self.right, q)
	default:
		return false
	}
}

// intersectNodes returns the (unaggregated) intersection of self and
// other. other's subtree is decomposed into its full set of contiguous
// length ranges first (treeRanges already walks every node, data and
// glue alike); each range is then matched against the whole of self in
// turn via intersectRange and the partial results combined. Decomposing
// other is what lets this reach data held on any of other's descendant
// nodes, not just other's own root.
func intersectNodes(self, other *node) *node {
	if self == nil || other == nil {
		return nil
	}
	var result *node
	other.treeRanges(func(r PrefixRange) bool {
		result = addNodes(result, intersectRange(self, r.toNode()))
		return true
	})
	return result
}

// intersectRange returns the portion of self's subtree that falls within
// the single, childless range node q, or nil if their bases are
// divergent.
func intersectRange(self, q *node) *node {
	if self == nil {
		return nil
	}
	result, _, _, _ := compare(self.base, q.base)
	if result == cmpDivergent {
		return nil
	}
	pfx := self.base
	if result == cmpSubprefix {
		pfx = q.base
	}
	n := &node{base: pfx, glue: self.glue.And(q.glue)}
	n = addNodes(n, intersectRange(self.left, q))
	n = addNodes(n, intersectRange(self.right, q))
	return n
}
