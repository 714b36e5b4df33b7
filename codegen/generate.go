// Package codegen is the lowering driver: it walks a Module's procedures
// in order, running liveness analysis and register allocation on each
// before handing it to the arm64 package to lower into assembly text.
package codegen

import (
	"github.com/saumitralohokare/lubec/codegen/arm64"
	"github.com/saumitralohokare/lubec/internal/liveness"
	"github.com/saumitralohokare/lubec/internal/regalloc"
	"github.com/saumitralohokare/lubec/ir"
)

// Generate lowers every procedure in m into one assembly file. The
// module's label minter is shared across procedures - each contributes
// exactly one return label to it - but otherwise each procedure is
// processed to completion, start to finish, before the next begins.
func Generate(m *ir.Module) *arm64.Asm {
	procs := m.Procedures()
	lowered := make([][]arm64.Instruction, 0, len(procs))
	for _, proc := range procs {
		graph, restr := liveness.Analyze(proc)
		asn := regalloc.Allocate(graph, restr, arm64.Palette)
		label := m.NewLabel()
		lowered = append(lowered, arm64.LowerProcedure(proc, asn, int(label.ID())))
	}
	return arm64.AssembleText(lowered)
}
