package arm64

import (
	"github.com/saumitralohokare/lubec/internal/regalloc"
	"github.com/saumitralohokare/lubec/ir"
)

// lowerInstr appends the AArch64 sequence implementing inst to out. slots
// maps every stack slot in the owning procedure to its byte offset from
// SP, asn maps every temporary to its allocated register, and
// returnLabel is the procedure's single return label, the target of a
// lowered Return.
func lowerInstr(out []Instruction, inst ir.Instruction, slots map[ir.SlotID]int, asn regalloc.Assignment, returnLabel int) []Instruction {
	switch inst.Op() {
	case ir.OpSet:
		dest := inst.Dest()
		reg := asn.Lookup(dest.ID())
		return append(out, movImmSequence(reg, int(dest.Size()), inst.Value().Bits64())...)

	case ir.OpLoad:
		dest, slot := inst.Dest(), inst.Slot()
		reg := asn.Lookup(dest.ID())
		off := slots[slot.ID()]
		return append(out, load(reg, off, loadOpFor(slot.Size(), slot.Signed()), int(slot.Size())))

	case ir.OpStore:
		slot, src := inst.Slot(), inst.Src()
		reg := asn.Lookup(src.ID())
		off := slots[slot.ID()]
		return append(out, store(reg, off, storeOpFor(slot.Size()), int(slot.Size())))

	case ir.OpAdd:
		dest := inst.Dest()
		rd := asn.Lookup(dest.ID())
		rn := asn.Lookup(inst.Src().ID())
		rm := asn.Lookup(inst.Src2().ID())
		return append(out, addReg(rd, rn, rm, int(dest.Size())))

	case ir.OpCall:
		return lowerCall(out, inst, asn)

	case ir.OpCallResult:
		dest := inst.Dest()
		reg := asn.Lookup(dest.ID())
		return append(out, movReg(reg, ReturnReg(), int(dest.Size())))

	case ir.OpReturn:
		if src, ok := inst.ReturnSrc(); ok {
			reg := asn.Lookup(src.ID())
			out = append(out, movReg(ReturnReg(), reg, int(src.Size())))
		}
		return append(out, branch(returnLabel))

	default:
		panic("arm64: unhandled IR opcode")
	}
}

func lowerCall(out []Instruction, inst ir.Instruction, asn regalloc.Assignment) []Instruction {
	args := inst.Args()

	var overflowSizes []ir.Size
	for i := 8; i < len(args); i++ {
		overflowSizes = append(overflowSizes, args[i].Size())
	}
	offs := overflowOffsets(overflowSizes)

	for idx, a := range args {
		reg := asn.Lookup(a.ID())
		if idx < 8 {
			out = append(out, movReg(ArgReg(idx), reg, int(a.Size())))
		} else {
			k := offs[idx-8]
			out = append(out, store(reg, k, storeOpFor(a.Size()), int(a.Size())))
		}
	}
	return append(out, branchLink(inst.Func()))
}
