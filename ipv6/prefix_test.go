package ipv6

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func _p(cidr string) Prefix {
	prefix, err := ParsePrefix(cidr)
	if err != nil {
		panic("only use this is happy cases")
	}
	return prefix
}

func mustPrefix(addr Address, length int) Prefix {
	p, err := NewPrefix(addr, length)
	if err != nil {
		panic(err)
	}
	return p
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		description string
		cidr        string
		expected    Prefix
		isErr       bool
	}{
		{
			description: "success",
			cidr:        "2001:db8::1/64",
			expected:    mustPrefix(AddressFromUint64(0x20010db800000000, 0), 64),
		},
		{
			description: "truncates host bits",
			cidr:        "2001:db8::1/32",
			expected:    mustPrefix(AddressFromUint64(0x20010db800000000, 0), 32),
		},
		{
			description: "ipv4",
			cidr:        "10.224.24.1/24",
			isErr:       true,
		},
		{
			description: "bogus",
			cidr:        "bogus",
			isErr:       true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			p, err := ParsePrefix(tt.cidr)
			if tt.isErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tt.expected, p)
			}
		})
	}
}

func TestNewPrefixInvalidLength(t *testing.T) {
	_, err := NewPrefix(Address{}, -1)
	assert.NotNil(t, err)

	_, err = NewPrefix(Address{}, 129)
	assert.NotNil(t, err)
}

func TestNewPrefixTruncatesHostBits(t *testing.T) {
	p, err := NewPrefix(AddressFromUint64(0x20010db800000001, 0), 32)
	assert.Nil(t, err)
	assert.Equal(t, AddressFromUint64(0x20010db800000000, 0), p.Address())
	assert.Equal(t, uint8(32), p.Length())
}

func TestPrefixEqual(t *testing.T) {
	first, second := mustPrefix(AddressFromUint64(1, 0), 64), mustPrefix(AddressFromUint64(1, 0), 64)
	assert.Equal(t, first, second)
	assert.True(t, first == second)

	third := mustPrefix(AddressFromUint64(2, 0), 64)
	assert.NotEqual(t, third, second)
	assert.False(t, third == first)
}

func TestPrefixToNetIPNet(t *testing.T) {
	assert.Equal(t, "2001:db8::/32", _p("2001:db8::1/32").ToNetIPNet().String())
}

func TestPrefixString(t *testing.T) {
	cidrs := []string{
		"::/0",
		"2001:db8::/32",
		"::1/128",
	}

	for _, cidr := range cidrs {
		t.Run(cidr, func(t *testing.T) {
			assert.Equal(t, cidr, _p(cidr).String())
		})
	}
}

func TestPrefixSubprefixAt(t *testing.T) {
	base := _p("2001:db8::/32")
	assert.Equal(t, _p("2001:db8::/33"), base.subprefixAt(33, 0))
	assert.Equal(t, _p("2001:db8:8000::/33"), base.subprefixAt(33, 1))

	assert.Equal(t, _p("2001:db8::/40"), base.subprefixAt(40, 0))
	assert.Equal(t, _p("2001:db8:100::/40"), base.subprefixAt(40, 1))
	assert.Equal(t, _p("2001:db8:ff00::/40"), base.subprefixAt(40, 255))
}

func TestPrefixNumSubprefixesAt(t *testing.T) {
	base := _p("2001:db8::/32")
	assert.Equal(t, uint64(1), base.numSubprefixesAt(32))
	assert.Equal(t, uint64(2), base.numSubprefixesAt(33))
	assert.Equal(t, uint64(256), base.numSubprefixesAt(40))
}
