// Package regalloc implements a graph-coloring register allocator over an
// architecture-neutral interference graph. It knows nothing about AArch64
// beyond the PhysReg numbering scheme handed to it by the caller; the
// codegen/arm64 package supplies that numbering and consumes the
// resulting Assignment.
package regalloc

// PhysReg identifies a physical register by the caller's own numbering
// scheme. The allocator treats this number as the sole coloring
// invariant: two temporaries joined by an interference edge never resolve
// to the same PhysReg. Operand width is not PhysReg's concern - the
// allocated temporary itself carries its own size.
type PhysReg int
