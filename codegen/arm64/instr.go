package arm64

import (
	"fmt"

	"github.com/saumitralohokare/lubec/internal/regalloc"
)

// kind identifies what an instruction is. Go has no union type, so
// instruction is a single flattened struct whose fields are reinterpreted
// according to kind - the same trick the rest of this codebase's lowering
// layers use for their own tagged-sum data.
type kind int

const (
	kindGlobalDirective kind = iota
	kindAlignDirective
	kindProcLabel
	kindLocalLabel
	kindMovImm16
	kindMovK
	kindMovReg
	kindAddImm
	kindSubImm
	kindAddReg
	kindLoad
	kindStore
	kindLoadPair
	kindStorePair
	kindBranch
	kindBranchLink
	kindRet
)

// loadStoreOp distinguishes the narrow load/store forms from one another;
// it only matters for kindLoad and kindStore.
type loadStoreOp int

const (
	opWord       loadStoreOp = iota // ldr/str, natural width from sizeBytes
	opByte                          // ldrb/strb
	opHalf                          // ldrh/strh
	opSignedByte                    // ldrsb (load only)
	opSignedHalf                    // ldrsh (load only)
	opSignedWord                    // ldrsw (load only)
)

// Instruction is one line of emitted assembly: a real AArch64 instruction,
// a directive, or a label. Each field group below is meaningful only for
// the kinds listed beside it.
type Instruction struct {
	kind kind

	// kindProcLabel, kindGlobalDirective
	sym string

	// kindLocalLabel, kindBranch
	label int

	// kindBranchLink
	callee string

	// kindMovImm16, kindMovK, kindMovReg, kindAddImm, kindSubImm,
	// kindAddReg, kindLoad, kindStore, kindLoadPair, kindStorePair
	rd, rn, rm regalloc.PhysReg
	sizeBytes  int

	// kindMovImm16, kindMovK: the 16-bit immediate and its lsl shift (0,16,32,48)
	imm16 uint16
	shift uint

	// kindAddImm, kindSubImm: the 12-bit immediate
	imm12 int

	// kindLoad, kindStore: the base is always SP, offset is the
	// displacement from it, and ls the narrow-form selector; a load's
	// destination is rd, a store's source is rn
	offset int
	ls     loadStoreOp

	// kindLoadPair: rd and rn are the pair; kindStorePair: rn and rm are
	// the pair; base is SP for both, offset is shared
}

func movImm16(rd regalloc.PhysReg, sizeBytes int, imm uint16) Instruction {
	return Instruction{kind: kindMovImm16, rd: rd, sizeBytes: sizeBytes, imm16: imm}
}

func movK(rd regalloc.PhysReg, sizeBytes int, imm uint16, shift uint) Instruction {
	return Instruction{kind: kindMovK, rd: rd, sizeBytes: sizeBytes, imm16: imm, shift: shift}
}

func movReg(rd, rn regalloc.PhysReg, sizeBytes int) Instruction {
	return Instruction{kind: kindMovReg, rd: rd, rn: rn, sizeBytes: sizeBytes}
}

func addImm(rd, rn regalloc.PhysReg, imm12 int) Instruction {
	if imm12 < 0 || imm12 > 0xfff {
		panic(fmt.Sprintf("arm64: add immediate #%d exceeds the 12-bit range", imm12))
	}
	return Instruction{kind: kindAddImm, rd: rd, rn: rn, sizeBytes: 8, imm12: imm12}
}

func subImm(rd, rn regalloc.PhysReg, imm12 int) Instruction {
	if imm12 < 0 || imm12 > 0xfff {
		panic(fmt.Sprintf("arm64: sub immediate #%d exceeds the 12-bit range", imm12))
	}
	return Instruction{kind: kindSubImm, rd: rd, rn: rn, sizeBytes: 8, imm12: imm12}
}

func addReg(rd, rn, rm regalloc.PhysReg, sizeBytes int) Instruction {
	return Instruction{kind: kindAddReg, rd: rd, rn: rn, rm: rm, sizeBytes: sizeBytes}
}

func load(rd regalloc.PhysReg, offset int, ls loadStoreOp, sizeBytes int) Instruction {
	return Instruction{kind: kindLoad, rd: rd, rn: SP, offset: offset, ls: ls, sizeBytes: sizeBytes}
}

func store(rn regalloc.PhysReg, offset int, ls loadStoreOp, sizeBytes int) Instruction {
	return Instruction{kind: kindStore, rn: rn, offset: offset, ls: ls, sizeBytes: sizeBytes}
}

func loadPair(rd1, rd2 regalloc.PhysReg, offset int) Instruction {
	return Instruction{kind: kindLoadPair, rd: rd1, rn: rd2, offset: offset}
}

func storePair(rn1, rn2 regalloc.PhysReg, offset int) Instruction {
	return Instruction{kind: kindStorePair, rn: rn1, rm: rn2, offset: offset}
}

func branch(label int) Instruction            { return Instruction{kind: kindBranch, label: label} }
func branchLink(callee string) Instruction    { return Instruction{kind: kindBranchLink, callee: callee} }
func ret() Instruction                        { return Instruction{kind: kindRet} }
func localLabel(id int) Instruction           { return Instruction{kind: kindLocalLabel, label: id} }
func procLabel(name string) Instruction       { return Instruction{kind: kindProcLabel, sym: name} }
func globalDirective(name string) Instruction { return Instruction{kind: kindGlobalDirective, sym: name} }
func alignDirective() Instruction             { return Instruction{kind: kindAlignDirective} }
