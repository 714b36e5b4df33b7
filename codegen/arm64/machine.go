package arm64

import (
	"github.com/saumitralohokare/lubec/internal/regalloc"
	"github.com/saumitralohokare/lubec/ir"
)

// frameSize returns the number of bytes the prologue's single `sub sp, sp,
// #frame` must reserve: the procedure's local slots, plus - for any
// procedure that issues a call - the 16-byte save area for the frame and
// link register pair, stacked above the local slots so a single sub/add
// pair suffices at the boundary.
func frameSize(proc *ir.Procedure) int {
	frame := proc.StackSize()
	if !proc.IsLeaf() {
		frame += 16
	}
	return frame
}

// LowerProcedure walks proc's instruction stream and returns the full
// sequence of assembly lines for it: an optional `.global`, the `.align`
// and entry label, the prologue, every lowered instruction, and the
// epilogue, which opens with the return label. asn must assign every temporary proc's
// instructions reference; returnLabel is the module-unique id this
// procedure's return label was minted with.
func LowerProcedure(proc *ir.Procedure, asn regalloc.Assignment, returnLabel int) []Instruction {
	slots := proc.SlotOffsets()
	frame := frameSize(proc)

	var out []Instruction
	out = lowerPrologue(out, proc, slots, frame)
	for _, inst := range proc.Instructions() {
		out = lowerInstr(out, inst, slots, asn, returnLabel)
	}
	out = lowerEpilogue(out, proc, returnLabel, frame)
	return out
}

func lowerPrologue(out []Instruction, proc *ir.Procedure, slots map[ir.SlotID]int, frame int) []Instruction {
	if proc.Public() {
		out = append(out, globalDirective(proc.Name()))
	}
	out = append(out, alignDirective(), procLabel(proc.Name()))

	if frame != 0 {
		out = append(out, subImm(SP, SP, frame))
	}
	if !proc.IsLeaf() {
		out = append(out, storePair(FP, LR, proc.StackSize()))
		out = append(out, addImm(FP, SP, 16))
	}

	args := proc.Args()
	var overflowSizes []ir.Size
	for i := 8; i < len(args); i++ {
		overflowSizes = append(overflowSizes, args[i].Size())
	}
	overflowOffs := overflowOffsets(overflowSizes)

	for idx, arg := range args {
		home := slots[arg.ID()]
		if idx < 8 {
			out = append(out, store(ArgReg(idx), home, storeOpFor(arg.Size()), int(arg.Size())))
			continue
		}
		k := overflowOffs[idx-8]
		out = append(out, load(Scratch, frame+k, loadOpFor(arg.Size(), arg.Signed()), int(arg.Size())))
		out = append(out, store(Scratch, home, storeOpFor(arg.Size()), int(arg.Size())))
	}
	return out
}

func lowerEpilogue(out []Instruction, proc *ir.Procedure, returnLabel int, frame int) []Instruction {
	out = append(out, localLabel(returnLabel))
	if !proc.IsLeaf() {
		out = append(out, loadPair(FP, LR, proc.StackSize()))
	}
	if frame != 0 {
		out = append(out, addImm(SP, SP, frame))
	}
	return append(out, ret())
}
