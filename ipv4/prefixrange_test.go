package ipv4

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
	r, err := NewPrefixRange(_p("192.0.2.0/24"), 26, 28)
	assert.Nil(t, err)
	assert.Equal(t, uint8(26), r.Lower())
	assert.Equal(t, uint8(28), r.Upper())
	assert.Equal(t, _p("192.0.2.0/24"), r.Base())
}

func TestNewPrefixRangeInvalid(t *testing.T) {
	_, err := NewPrefixRange(_p("192.0.2.0/24"), 20, 28)
	assert.NotNil(t, err, "lower below base length")

	_, err = NewPrefixRange(_p("192.0.2.0/24"), 28, 26)
	assert.NotNil(t, err, "lower above upper")

	_, err = NewPrefixRange(_p("192.0.2.0/24"), 26, 33)
	assert.NotNil(t, err, "upper above MaxLength")
}

func TestParsePrefixRange(t *testing.T) {
	r, err := ParsePrefixRange("192.0.2.0/24,26,28")
	assert.Nil(t, err)
	assert.Equal(t, _r("192.0.2.0/24", 26, 28), r)
}

func TestParsePrefixRangeErrors(t *testing.T) {
	tests := []string{
		"192.0.2.0/24,26",
		"192.0.2.0/24,26,28,30",
		"bogus/24,26,28",
		"192.0.2.0/24,x,28",
		"192.0.2.0/24,26,y",
		"192.0.2.0/24,20,28",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParsePrefixRange(s)
			assert.NotNil(t, err)
		})
	}
}

func TestPrefixRangeString(t *testing.T) {
	assert.Equal(t, "192.0.2.0/24,26,28", _r("192.0.2.0/24", 26, 28).String())
}
