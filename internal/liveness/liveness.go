// Package liveness builds a procedure's interference graph and its
// ABI-register restrictions with a single backward scan over the
// instruction stream, ahead of register allocation.
package liveness

import (
	"github.com/saumitralohokare/lubec/codegen/arm64"
	"github.com/saumitralohokare/lubec/internal/regalloc"
	"github.com/saumitralohokare/lubec/ir"
)

// Analyze walks proc.Instructions() once, back to front, maintaining the
// set of temporaries alive at the current program point. Every
// definition adds an interference edge to every temporary alive at that
// point, before that definition's own operands (if any) are added to the
// alive set. Temporaries that cross an ABI boundary - the operand of a
// Return, or an argument of a Call within the first eight - get a
// preferred physical register recorded alongside the edge.
func Analyze(proc *ir.Procedure) (*regalloc.Graph, regalloc.Restrictions) {
	graph := regalloc.NewGraph()
	restr := make(regalloc.Restrictions)
	alive := make(map[ir.TempID]bool)

	define := func(t ir.Temporary) {
		graph.AddNode(t.ID())
		for a := range alive {
			graph.AddEdge(t.ID(), a)
		}
		delete(alive, t.ID())
	}
	use := func(t ir.Temporary) {
		graph.AddNode(t.ID())
		alive[t.ID()] = true
	}

	instrs := proc.Instructions()
	for i := len(instrs) - 1; i >= 0; i-- {
		inst := instrs[i]
		switch inst.Op() {
		case ir.OpSet, ir.OpLoad, ir.OpCallResult:
			define(inst.Dest())

		case ir.OpAdd:
			define(inst.Dest())
			use(inst.Src())
			use(inst.Src2())

		case ir.OpStore:
			use(inst.Src())

		case ir.OpReturn:
			if src, ok := inst.ReturnSrc(); ok {
				use(src)
				restr.Prefer(src.ID(), arm64.ReturnReg())
			}

		case ir.OpCall:
			for idx, arg := range inst.Args() {
				use(arg)
				if idx < 8 {
					restr.Prefer(arg.ID(), arm64.ArgReg(idx))
				}
			}
		}
	}
	return graph, restr
}
