package ipv4

// GlueMap is the LengthMap attached to a tree node. Bit ℓ set means the
// subprefix of the node's base at length ℓ is a member of the set. Bits
// below the node's base length must always be zero (invariant 2); nodes
// enforce this at construction, GlueMap itself is an unconstrained bitset.
type GlueMap = LengthMap

// ZeroGlue is the empty glue map: a pure routing (glue) node.
var ZeroGlue = ZeroLengthMap

// SingletonGlue returns a GlueMap with only bit length set.
func SingletonGlue(length uint8) GlueMap {
	return SingletonLength(length)
}

// GlueMapFromRange returns a GlueMap with exactly the bits in [lower, upper] set.
func GlueMapFromRange(lower, upper uint8) GlueMap {
	return LengthMapFromRange(lower, upper)
}
