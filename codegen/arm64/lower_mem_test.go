package arm64

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saumitralohokare/lubec/ir"
)

func TestOverflowOffsets_PadsToNaturalAlignment(t *testing.T) {
	offs := overflowOffsets([]ir.Size{ir.Byte, ir.DoubleWord, ir.Word})
	// byte at 0; doubleword must align up to 4, not pack at 1; word packs
	// right after the doubleword since 8 is already a multiple of 2.
	assert.Equal(t, []int{0, 4, 8}, offs)
}

func TestOverflowOffsets_Empty(t *testing.T) {
	assert.Empty(t, overflowOffsets(nil))
}

func TestLoadOpFor_SignedVsUnsignedNarrow(t *testing.T) {
	assert.Equal(t, opSignedByte, loadOpFor(ir.Byte, true))
	assert.Equal(t, opByte, loadOpFor(ir.Byte, false))
	assert.Equal(t, opSignedHalf, loadOpFor(ir.Word, true))
	assert.Equal(t, opHalf, loadOpFor(ir.Word, false))
	assert.Equal(t, opWord, loadOpFor(ir.DoubleWord, true))
	assert.Equal(t, opWord, loadOpFor(ir.QuadWord, false))
}
