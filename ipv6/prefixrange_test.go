package ipv6

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func _r(base string, lower, upper int) PrefixRange {
	r, err := NewPrefixRange(_p(base), lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

func TestNewPrefixRangeValid(t *testing.T) {
	r, err := NewPrefixRange(_p("2001:db8::/32"), 48, 56)
	assert.Nil(t, err)
	assert.Equal(t, uint8(48), r.Lower())
	assert.Equal(t, uint8(56), r.Upper())
	assert.Equal(t, _p("2001:db8::/32"), r.Base())
}

func TestNewPrefixRangeInvalid(t *testing.T) {
	_, err := NewPrefixRange(_p("2001:db8::/32"), 20, 56)
	assert.NotNil(t, err, "lower below base length")

	_, err = NewPrefixRange(_p("2001:db8::/32"), 56, 48)
	assert.NotNil(t, err, "lower above upper")

	_, err = NewPrefixRange(_p("2001:db8::/32"), 48, 129)
	assert.NotNil(t, err, "upper above MaxLength")
}

func TestParsePrefixRange(t *testing.T) {
	r, err := ParsePrefixRange("2001:db8::/32,48,56")
	assert.Nil(t, err)
	assert.Equal(t, _r("2001:db8::/32", 48, 56), r)
}

func TestParsePrefixRangeErrors(t *testing.T) {
	tests := []string{
		"2001:db8::/32,48",
		"2001:db8::/32,48,56,60",
		"bogus/32,48,56",
		"2001:db8::/32,x,56",
		"2001:db8::/32,48,y",
		"2001:db8::/32,20,56",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParsePrefixRange(s)
			assert.NotNil(t, err)
		})
	}
}

func TestPrefixRangeString(t *testing.T) {
	assert.Equal(t, "2001:db8::/32,48,56", _r("2001:db8::/32", 48, 56).String())
}
