package arm64

import "github.com/saumitralohokare/lubec/internal/regalloc"

// movImmSequence synthesizes dest <- bits64 (already the value's canonical
// 64-bit reinterpretation) as one mov of the low 16 bits followed by up to
// three movk instructions for the higher halves, honoring destSizeBytes:
// destinations narrower than 4 bytes stop after the mov, and 4-byte
// destinations never look past the second half, since those bits fall
// outside a w-register. A movk is only emitted when its half is nonzero,
// so a value whose upper halves all happen to be zero gets the shortest
// possible sequence.
func movImmSequence(dest regalloc.PhysReg, destSizeBytes int, bits64 uint64) []Instruction {
	var halves [4]uint16
	for i := range halves {
		halves[i] = uint16(bits64 >> (16 * i))
	}

	maxHalves := 4
	switch {
	case destSizeBytes <= 2:
		maxHalves = 1
	case destSizeBytes == 4:
		maxHalves = 2
	}

	out := []Instruction{movImm16(dest, destSizeBytes, halves[0])}
	for i := 1; i < maxHalves; i++ {
		if halves[i] != 0 {
			out = append(out, movK(dest, destSizeBytes, halves[i], uint(16*i)))
		}
	}
	return out
}
