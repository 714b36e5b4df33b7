package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackSize_RoundsUpTo16(t *testing.T) {
	p := NewProcedure("_f")
	p.AddArg(DoubleWord, true)
	assert.Equal(t, 16, p.StackSize())

	p2 := NewProcedure("_g")
	for i := 0; i < 3; i++ {
		p2.AddArg(DoubleWord, true)
	}
	assert.Equal(t, 16, p2.StackSize())

	p3 := NewProcedure("_h")
	for i := 0; i < 5; i++ {
		p3.AddArg(DoubleWord, true)
	}
	assert.Equal(t, 32, p3.StackSize())
}

func TestSlotOffsets_NonOverlappingAndAligned(t *testing.T) {
	p := NewProcedure("_mixed")
	s1 := p.AddArg(Byte, true)
	s2 := p.AddArg(Word, false)
	s3 := p.AddArg(DoubleWord, true)
	s4 := p.AddArg(QuadWord, false)

	offs := p.SlotOffsets()
	frame := p.StackSize()
	require.Equal(t, 16, frame)

	type span struct{ lo, hi int }
	var spans []span
	for _, s := range []StackSlot{s1, s2, s3, s4} {
		off, ok := offs[s.ID()]
		require.True(t, ok)
		assert.True(t, off >= 0 && off < frame, "offset %d out of [0, %d)", off, frame)
		assert.Equal(t, 0, off%int(s.Size()), "offset %d not aligned to size %d", off, s.Size())
		spans = append(spans, span{off, off + int(s.Size())})
	}

	for i := range spans {
		for j := range spans {
			if i == j {
				continue
			}
			overlap := spans[i].lo < spans[j].hi && spans[j].lo < spans[i].hi
			assert.False(t, overlap, "slots %d and %d overlap: %v %v", i, j, spans[i], spans[j])
		}
	}
}

func TestTwoArgAdd_SlotOffsetsTopDown(t *testing.T) {
	p := NewProcedure("_add")
	a := p.AddArg(DoubleWord, true)
	b := p.AddArg(DoubleWord, true)

	offs := p.SlotOffsets()
	assert.Equal(t, 16, p.StackSize())
	assert.Equal(t, 12, offs[a.ID()])
	assert.Equal(t, 8, offs[b.ID()])
}

func TestIsLeaf(t *testing.T) {
	p := NewProcedure("_leaf")
	assert.True(t, p.IsLeaf())

	t0 := p.AddInstSet(I32(1))
	p.AddInstReturn(&t0)
	assert.True(t, p.IsLeaf(), "still a leaf: no Call appended")

	p.AddInstCall("_other", nil)
	assert.False(t, p.IsLeaf(), "appending a Call makes the procedure non-leaf")
}

func TestAddRejectsMismatchedSizes(t *testing.T) {
	p := NewProcedure("_bad")
	a := p.AddInstSet(I32(1))
	b := p.AddInstSet(I64(1))
	assert.Panics(t, func() { p.AddInstAdd(a, b) })
}

func TestAddInheritsSignedness(t *testing.T) {
	p := NewProcedure("_p")
	signed := p.AddInstSet(I32(1))
	unsigned := p.AddInstSet(U32(2))
	sum := p.AddInstAdd(signed, unsigned)
	assert.True(t, sum.Signed(), "Add is signed if either operand is signed")
}
