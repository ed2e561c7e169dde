package ipv6

// NodeVisitor is called for every node, glue and data alike, during a
// pre-order walk of a subtree. Returning false stops the walk early.
type NodeVisitor func(base Prefix, glue GlueMap) bool

// children walks n's subtree pre-order: n itself, then its left subtree,
// then its right subtree. Lazy and restartable: a fresh walk costs
// nothing but call-stack depth bounded by the tree's height.
func (n *node) children(visit NodeVisitor) bool {
	if n == nil {
		return true
	}
	if !visit(n.base, n.glue) {
		return false
	}
	if !n.left.children(visit) {
		return false
	}
	return n.right.children(visit)
}

// RangeVisitor is called for every maximal contiguous run of set-member
// lengths found while scanning a glue map.
type RangeVisitor func(PrefixRange) bool

// ranges scans n's own glue map, not its descendants, for PrefixRanges.
func (n *node) ranges(visit RangeVisitor) bool {
	if n == nil || n.glue.IsZero() {
		return true
	}
	from := n.base.Length()
	for {
		lower, upper, ok := n.glue.NextRange(from)
		if !ok {
			return true
		}
		r, err := NewPrefixRange(n.base, int(lower), int(upper))
		if err != nil {
			panic(err)
		}
		if !visit(r) {
			return false
		}
		if upper == MaxLength {
			return true
		}
		from = upper + 1
	}
}

// treeRanges walks the whole subtree pre-order, yielding every node's own
// ranges as it goes: the set-level range iterator.
func (n *node) treeRanges(visit RangeVisitor) bool {
	if n == nil {
		return true
	}
	if !n.ranges(visit) {
		return false
	}
	if !n.left.treeRanges(visit) {
		return false
	}
	return n.right.treeRanges(visit)
}

// PrefixVisitor is called for every individual prefix denoted by a set or
// range.
type PrefixVisitor func(Prefix) bool

// expandRange enumerates every member prefix of r, in increasing length
// then address order, per length.
func expandRange(r PrefixRange, visit PrefixVisitor) bool {
	base := r.Base()
	for length := r.Lower(); ; length++ {
		count := base.numSubprefixesAt(length)
		for i := uint64(0); i < count; i++ {
			if !visit(base.subprefixAt(length, i)) {
				return false
			}
		}
		if length == r.Upper() {
			return true
		}
	}
}
