package arm64

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovImmSequence_ByteDestStopsAfterFirstMov(t *testing.T) {
	seq := movImmSequence(X8, 1, 0xffffffffffffffff)
	assert.Len(t, seq, 1)
	assert.Equal(t, "mov w8, #65535", seq[0].String())
}

func TestMovImmSequence_WordDestStopsAfterFirstMov(t *testing.T) {
	seq := movImmSequence(X8, 2, 0xbeef)
	assert.Len(t, seq, 1)
}

func TestMovImmSequence_DoubleWordNeverEmitsBeyondSecondHalf(t *testing.T) {
	// Upper 32 bits are nonzero, but a 4-byte destination must never look
	// past the second 16-bit half.
	seq := movImmSequence(X8, 4, 0xffffffff00000001)
	assert.Len(t, seq, 1, "low half is 1, high half (within the 32 bits) is 0: only the mov is needed")
	assert.Equal(t, "mov w8, #1", seq[0].String())
}

func TestMovImmSequence_DoubleWordWithNonzeroSecondHalf(t *testing.T) {
	seq := movImmSequence(X8, 4, 0xdeadbeef)
	require2Len(t, seq, 2)
	assert.Equal(t, "mov w8, #48879", seq[0].String())
	assert.Equal(t, "movk w8, #57005, lsl #16", seq[1].String())
}

func TestMovImmSequence_QuadWordEmitsOnlyNonzeroHalves(t *testing.T) {
	// 9876543210 = 0x2_4cb0_16ea: halves are 0x16ea, 0x4cb0, 0x2, 0x0.
	seq := movImmSequence(X9, 8, 9876543210)
	require2Len(t, seq, 3)
	assert.Equal(t, "mov x9, #5866", seq[0].String())
	assert.Equal(t, "movk x9, #19632, lsl #16", seq[1].String())
	assert.Equal(t, "movk x9, #2, lsl #32", seq[2].String())
}

func TestMovImmSequence_AllZeroUpperHalvesEmitsJustTheMov(t *testing.T) {
	seq := movImmSequence(X9, 8, 42)
	require2Len(t, seq, 1)
	assert.Equal(t, "mov x9, #42", seq[0].String())
}

func require2Len(t *testing.T, seq []Instruction, n int) {
	t.Helper()
	assert.Lenf(t, seq, n, "expected %d instructions, got %d: %v", n, len(seq), renderAll(seq))
}

func renderAll(seq []Instruction) []string {
	out := make([]string, len(seq))
	for i, s := range seq {
		out[i] = s.String()
	}
	return out
}
