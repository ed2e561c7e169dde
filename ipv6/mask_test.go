package ipv6

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allOnesBytes(n int) []byte {
	b := make([]byte, 16)
	for i := 0; i < n/8; i++ {
		b[i] = 0xff
	}
	if n%8 != 0 {
		b[n/8] = byte(0xff << (8 - n%8))
	}
	return b
}

func TestMaskLength(t *testing.T) {
	assert.Equal(t, 0, Mask{}.Length())
	assert.Equal(t, 16, Mask{uint128{0xffff000000000000, 0}}.Length())
	assert.Equal(t, 64, Mask{uint128{maxUint64, 0}}.Length())
	assert.Equal(t, 96, Mask{uint128{maxUint64, 0xffffffff00000000}}.Length())
	assert.Equal(t, 128, Mask{uint128{maxUint64, maxUint64}}.Length())
}

func TestMaskFromBytesError(t *testing.T) {
	_, err := MaskFromBytes([]byte{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.NotNil(t, err)
}

func TestMaskFromBytes(t *testing.T) {
	for _, n := range []int{0, 16, 64, 96, 128} {
		m, err := MaskFromBytes(allOnesBytes(n))
		assert.Nil(t, err)
		assert.Equal(t, n, m.Length())
	}
}

func TestMaskFromUint64Error(t *testing.T) {
	_, err := MaskFromUint64(0x1, 0)
	assert.NotNil(t, err)

	_, err = MaskFromUint64(maxUint64, 0xf0ffffffffffffff)
	assert.NotNil(t, err)
}

func TestMaskFromNetIPMask(t *testing.T) {
	convert := func(ones, bits int) Mask {
		stdMask := net.CIDRMask(ones, bits)
		mask, err := MaskFromNetIPMask(stdMask)
		assert.Nil(t, err)
		return mask
	}
	assert.Equal(t, 0, convert(0, SIZE).Length())
	assert.Equal(t, 48, convert(48, SIZE).Length())
	assert.Equal(t, 128, convert(128, SIZE).Length())

	runWithError := func(ones, bits int) {
		stdMask := net.CIDRMask(ones, bits)
		_, err := MaskFromNetIPMask(stdMask)
		assert.NotNil(t, err)
	}
	runWithError(16, 32)
	runWithError(129, 128)
}

func TestMaskToNetIPMask(t *testing.T) {
	m, err := MaskFromLength(64)
	assert.Nil(t, err)
	assert.Equal(t, net.CIDRMask(64, SIZE), m.ToNetIPMask())
}

func TestAddressString(t *testing.T) {
	ips := []string{
		"::",
		"2001:db8::1",
		"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	for _, ip := range ips {
		t.Run(ip, func(t *testing.T) {
			parsed, err := ParseAddress(ip)
			assert.Nil(t, err)
			assert.Equal(t, net.ParseIP(ip).String(), parsed.String())
		})
	}
}

func TestMaskString(t *testing.T) {
	tests := []struct {
		length int
		str    string
	}{
		{length: 0, str: "::"},
		{length: 128, str: "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, lengthToMask(tt.length).String())
		})
	}
}
