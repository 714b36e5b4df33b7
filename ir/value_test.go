package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits64_UnsignedZeroExtends(t *testing.T) {
	assert.Equal(t, uint64(0xff), U8(0xff).Bits64())
	assert.Equal(t, uint64(0xbeef), U16(0xbeef).Bits64())
	assert.Equal(t, uint64(0xffffffff), U32(0xffffffff).Bits64())
}

func TestBits64_SignedSignExtends(t *testing.T) {
	assert.Equal(t, uint64(0xffffffffffffffff), I8(-1).Bits64())
	assert.Equal(t, uint64(0x7f), I8(127).Bits64())
	assert.Equal(t, uint64(0xfffffffffffffffe), I16(-2).Bits64())
	assert.Equal(t, uint64(0xfffffffffffe1dc0), I32(-123456).Bits64())
}

func TestBits64_64BitPassesThrough(t *testing.T) {
	assert.Equal(t, uint64(9876543210), U64(9876543210).Bits64())
	assert.Equal(t, uint64(0xffffffffffffffff), I64(-1).Bits64())
}
