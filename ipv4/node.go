package ipv4

import "math/bits"

// node is a radix-tree node: it owns a base prefix, a glue map recording
// which subprefix lengths of base are set members, and up to two child
// owners. A node with a zero glue map is a glue node: it contributes no
// members of its own, only structural routing for its descendants.
type node struct {
	base  Prefix
	glue  GlueMap
	left  *node
	right *node
}

func newDataNode(base Prefix, glue GlueMap) *node {
	return &node{base: base, glue: glue}
}

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

// containsPrefix compares shorter against longer, where shorter.length <=
// longer.length. matches is true iff shorter's bits, truncated to its own
// length, agree with longer's. common is always the number of matching
// high-order bits. child tells whether bit index common (0-based from the
// MSB) of longer is 0 or 1; it is only meaningful to route longer beneath
// shorter when matches is true and the lengths differ, or to place two
// divergent prefixes side by side when matches is false.
func containsPrefix(shorter, longer Prefix) (matches bool, common uint8, child uint8) {
	mask := lengthToMask(int(shorter.Length()))
	if shorter.bits()&mask.ui == longer.bits()&mask.ui {
		matches = true
		common = shorter.Length()
	} else {
		common = uint8(bits.LeadingZeros32(shorter.bits() ^ longer.bits()))
	}
	if common < addressSize {
		pivot := uint32(0x80000000) >> common
		if longer.bits()&pivot != 0 {
			child = 1
		}
	}
	return
}

// compare relates self.base to other.base. reversed is true when other is
// the shorter of the two (so containsPrefix was called with the arguments
// swapped); common and child are as described in containsPrefix, always
// computed against the (shorter, longer) pair regardless of which of
// self/other played which role.
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

// addNodes merges other into self, returning the new owning root. Either
// argument may be nil.
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
		// other is strictly below self: it cannot carry lengths already
		// held by the ancestor.
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
		// other covers self: mirror image of the subprefix case.
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

// removeNodes subtracts every length recorded anywhere in other's subtree
// from self, post-order: other's children are applied before other itself.
func removeNodes(self, other *node) *node {
	if self == nil || other == nil {
		return self
	}
	self = removeNodes(self, other.left)
	self = removeNodes(self, other.right)
	return removeOne(self, other)
}

// removeOne applies a single other node (not its children) to self.
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

// aggregateNode canonicalises self given mask, the glue already claimed by
// an ancestor. It dedupes top-down, pulls shared sibling bits up
// bottom-up, and prunes empty glue nodes.
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

// cleanNode prunes a glue node (zero glue map) with fewer than two
// children: nil if it has none, the surviving child if it has one.
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

// searchNode reports whether self's subtree covers every length set in
// q's glue map for q's base prefix.
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
