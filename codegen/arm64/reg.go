// Package arm64 lowers a liveness-analyzed, register-allocated IR
// procedure into AArch64 (Apple variant) assembly text: stack frames,
// prologues and epilogues, and the mov/ldr/str/add/bl sequences that
// implement each IR instruction, following AAPCS64.
package arm64

import (
	"fmt"

	"github.com/saumitralohokare/lubec/internal/regalloc"
)

// Physical general-purpose registers, numbered by their AArch64 hardware
// encoding. X31 is context-dependent on real hardware (SP or the zero
// register); here it always means the stack pointer, since this backend
// never materializes the zero register.
const (
	X0 regalloc.PhysReg = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29 // frame pointer (FP)
	X30 // link register (LR)
	SP  = regalloc.PhysReg(31)
)

// FP and LR name X29 and X30 for use in prologue/epilogue code, where
// they hold frame-management meaning rather than general-purpose values.
const (
	FP = X29
	LR = X30
)

// Palette is the ordered set of general-purpose registers the allocator
// may assign to a temporary. It excludes the argument/return registers
// (X0-X7), the callee-saved frame/link pair (X29, X30), and the three
// platform-reserved registers (X16-X18); X9 appears here despite also
// being reserved as a scratch register during prologue overflow-argument
// shuffling, since that use completes before any temporary is live.
var Palette = []regalloc.PhysReg{
	X8, X9, X10, X11, X12, X13, X14, X15,
	X19, X20, X21, X22, X23, X24, X25, X26, X27, X28,
}

// Scratch is the register prologue lowering uses to shuffle overflow
// arguments from the caller's stack into their home slots.
const Scratch = X9

// ArgReg returns the i-th AAPCS64 integer argument register. It is only
// meaningful for i in [0, 8); beyond that, arguments are passed on the
// caller's stack.
func ArgReg(i int) regalloc.PhysReg {
	if i < 0 || i >= 8 {
		panic(fmt.Sprintf("arm64: argument index %d has no home register", i))
	}
	return X0 + regalloc.PhysReg(i)
}

// ReturnReg is the AAPCS64 integer return-value register.
func ReturnReg() regalloc.PhysReg { return X0 }

// formatReg prints reg as an operand at the given width in bytes: "sp" for
// the stack pointer, "w<n>" at widths up to 4 bytes, "x<n>" at 8 bytes.
func formatReg(reg regalloc.PhysReg, sizeBytes int) string {
	if reg == SP {
		return "sp"
	}
	if sizeBytes <= 4 {
		return fmt.Sprintf("w%d", reg)
	}
	return fmt.Sprintf("x%d", reg)
}
