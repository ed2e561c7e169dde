package ipv6

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopherset/prefixset/pfxerr"
)

// PrefixRange denotes every subprefix of base whose length lies in
// [lower, upper]. The zero value is not meaningful; construct with
// NewPrefixRange or ParsePrefixRange.
type PrefixRange struct {
	base  Prefix
	lower uint8
	upper uint8
}

// NewPrefixRange returns the range (base, lower, upper), failing with
// pfxerr.InvalidLength unless base.Length() <= lower <= upper <= 128.
func NewPrefixRange(base Prefix, lower, upper int) (PrefixRange, error) {
	if lower < int(base.Length()) || lower > upper || upper > int(MaxLength) {
		return PrefixRange{}, pfxerr.New(pfxerr.InvalidLength,
			fmt.Sprintf("range bounds %d,%d invalid for base %s (must satisfy %d <= lower <= upper <= %d)",
				lower, upper, base, base.Length(), MaxLength))
	}
	return PrefixRange{base: base, lower: uint8(lower), upper: uint8(upper)}, nil
}

// ParsePrefixRange parses the textual form "BASE,LOWER,UPPER", e.g.
// "2001:db8::/32,48,56".
func ParsePrefixRange(s string) (PrefixRange, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return PrefixRange{}, pfxerr.New(pfxerr.ParseRange,
			fmt.Sprintf("range %q must have the form BASE,LOWER,UPPER", s))
	}
	base, err := ParsePrefix(parts[0])
	if err != nil {
		return PrefixRange{}, pfxerr.Wrap(pfxerr.ParseRange, fmt.Sprintf("failed to parse base of range %q", s), err)
	}
	lower, err := strconv.Atoi(parts[1])
	if err != nil {
		return PrefixRange{}, pfxerr.Wrap(pfxerr.ParseRange, fmt.Sprintf("failed to parse lower bound of range %q", s), err)
	}
	upper, err := strconv.Atoi(parts[2])
	if err != nil {
		return PrefixRange{}, pfxerr.Wrap(pfxerr.ParseRange, fmt.Sprintf("failed to parse upper bound of range %q", s), err)
	}
	return NewPrefixRange(base, lower, upper)
}

// Base returns the range's base prefix.
func (r PrefixRange) Base() Prefix { return r.base }

// Lower returns the range's lower length bound.
func (r PrefixRange) Lower() uint8 { return r.lower }

// Upper returns the range's upper length bound.
func (r PrefixRange) Upper() uint8 { return r.upper }

// String renders the range in "BASE,LOWER,UPPER" form.
func (r PrefixRange) String() string {
	return fmt.Sprintf("%s,%d,%d", r.base, r.lower, r.upper)
}

// glue returns the GlueMap denoted by this range, relative to its own base.
func (r PrefixRange) glue() GlueMap { return GlueMapFromRange(r.lower, r.upper) }

// toNode wraps r as a data node, satisfying Member.
func (r PrefixRange) toNode() *node { return newDataNode(r.base, r.glue()) }
