package arm64

import "fmt"

// memOperand formats an SP-relative memory operand, omitting the #0
// displacement GNU-as would otherwise print redundantly: "[sp]" when
// offset is zero, "[sp, #k]" otherwise.
func memOperand(offset int) string {
	if offset == 0 {
		return "[sp]"
	}
	return fmt.Sprintf("[sp, #%d]", offset)
}

func loadMnemonic(ls loadStoreOp) string {
	switch ls {
	case opWord:
		return "ldr"
	case opByte:
		return "ldrb"
	case opHalf:
		return "ldrh"
	case opSignedByte:
		return "ldrsb"
	case opSignedHalf:
		return "ldrsh"
	case opSignedWord:
		return "ldrsw"
	default:
		panic("arm64: invalid load form")
	}
}

func storeMnemonic(ls loadStoreOp) string {
	switch ls {
	case opWord:
		return "str"
	case opByte:
		return "strb"
	case opHalf:
		return "strh"
	default:
		panic("arm64: invalid store form")
	}
}

// String renders one line of assembly text for i, GNU AArch64 syntax,
// with no trailing newline.
func (i Instruction) String() string {
	switch i.kind {
	case kindGlobalDirective:
		return fmt.Sprintf(".global %s", i.sym)
	case kindAlignDirective:
		return ".align 2"
	case kindProcLabel:
		return fmt.Sprintf("%s:", i.sym)
	case kindLocalLabel:
		return fmt.Sprintf("%s:", labelName(i.label))
	case kindMovImm16:
		return fmt.Sprintf("mov %s, #%d", formatReg(i.rd, i.sizeBytes), i.imm16)
	case kindMovK:
		return fmt.Sprintf("movk %s, #%d, lsl #%d", formatReg(i.rd, i.sizeBytes), i.imm16, i.shift)
	case kindMovReg:
		return fmt.Sprintf("mov %s, %s", formatReg(i.rd, i.sizeBytes), formatReg(i.rn, i.sizeBytes))
	case kindAddImm:
		return fmt.Sprintf("add %s, %s, #%d", formatReg(i.rd, i.sizeBytes), formatReg(i.rn, i.sizeBytes), i.imm12)
	case kindSubImm:
		return fmt.Sprintf("sub %s, %s, #%d", formatReg(i.rd, i.sizeBytes), formatReg(i.rn, i.sizeBytes), i.imm12)
	case kindAddReg:
		return fmt.Sprintf("add %s, %s, %s",
			formatReg(i.rd, i.sizeBytes), formatReg(i.rn, i.sizeBytes), formatReg(i.rm, i.sizeBytes))
	case kindLoad:
		width := i.sizeBytes
		if i.ls != opWord && i.ls != opSignedWord {
			width = 4 // narrow loads always land in a w-register
		}
		return fmt.Sprintf("%s %s, %s", loadMnemonic(i.ls), formatReg(i.rd, width), memOperand(i.offset))
	case kindStore:
		width := i.sizeBytes
		if i.ls != opWord {
			width = 4
		}
		return fmt.Sprintf("%s %s, %s", storeMnemonic(i.ls), formatReg(i.rn, width), memOperand(i.offset))
	case kindLoadPair:
		return fmt.Sprintf("ldp %s, %s, %s", formatReg(i.rd, 8), formatReg(i.rn, 8), memOperand(i.offset))
	case kindStorePair:
		return fmt.Sprintf("stp %s, %s, %s", formatReg(i.rn, 8), formatReg(i.rm, 8), memOperand(i.offset))
	case kindBranch:
		return fmt.Sprintf("b %s", labelName(i.label))
	case kindBranchLink:
		return fmt.Sprintf("bl %s", i.callee)
	case kindRet:
		return "ret"
	default:
		panic(fmt.Sprintf("arm64: unformattable Instruction kind %d", i.kind))
	}
}

// labelName renders a locally-minted label as it appears in assembly
// text. Procedure names, by contrast, are emitted verbatim (see
// kindProcLabel / kindBranchLink).
func labelName(id int) string {
	return fmt.Sprintf("label_%d", id)
}
