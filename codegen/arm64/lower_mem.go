package arm64

import "github.com/saumitralohokare/lubec/ir"

// loadOpFor picks the load form for a value of the given size and
// signedness: plain narrow loads for unsigned sub-word values, the
// sign-extending ldrs{b,h} forms for signed ones, and the full-width ldr
// for anything 4 bytes or wider.
func loadOpFor(size ir.Size, signed bool) loadStoreOp {
	switch size {
	case ir.Byte:
		if signed {
			return opSignedByte
		}
		return opByte
	case ir.Word:
		if signed {
			return opSignedHalf
		}
		return opHalf
	default:
		return opWord
	}
}

// storeOpFor picks the store form for a value of the given size. Stores
// never sign-extend, so signedness plays no role.
func storeOpFor(size ir.Size) loadStoreOp {
	switch size {
	case ir.Byte:
		return opByte
	case ir.Word:
		return opHalf
	default:
		return opWord
	}
}

// overflowOffsets lays out a sequence of stack-passed arguments one after
// another starting at offset 0, padding each to its own natural alignment
// before placing it. The same function computes both sides of an overflow
// argument's home: the caller uses it to decide where to `str` an
// eighth-and-beyond argument ahead of a call, and the callee's prologue
// uses it to decide where, relative to its own frame, to `ldr` that same
// argument back out. Keeping both sides on one routine is what guarantees
// they agree.
func overflowOffsets(sizes []ir.Size) []int {
	offs := make([]int, len(sizes))
	cursor := 0
	for idx, sz := range sizes {
		cursor = sz.Align(cursor)
		offs[idx] = cursor
		cursor += int(sz)
	}
	return offs
}
