package ipv6

// GlueMap is an alias for LengthMap: the set of prefix lengths for which a
// node carries aggregated member data, relative to its own base prefix.
type GlueMap = LengthMap

var ZeroGlue = ZeroLengthMap

func SingletonGlue(length uint8) GlueMap { return SingletonLength(length) }

func GlueMapFromRange(lower, upper uint8) GlueMap { return LengthMapFromRange(lower, upper) }
