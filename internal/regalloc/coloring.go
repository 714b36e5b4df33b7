package regalloc

import (
	"fmt"

	"github.com/saumitralohokare/lubec/ir"
)

// Assignment is the total map from temporary identity to the physical
// register the allocator colored it with.
type Assignment map[ir.TempID]PhysReg

// Lookup returns t's assigned register. Calling it for a temporary that
// never appeared in the graph the Assignment was built from is a bug in
// the caller, and panics rather than silently returning the zero
// register.
func (a Assignment) Lookup(t ir.TempID) PhysReg {
	reg, ok := a[t]
	if !ok {
		panic(fmt.Sprintf("regalloc: temporary t%d was never colored", t))
	}
	return reg
}

// Allocate colors every temporary in g with one of the registers in
// palette, honoring restr where feasible. Temporaries are visited in g's
// deterministic node order (ascending id), and for each one:
//
//  1. If restr names a preferred register and no already-colored neighbor
//     holds it, that register is assigned.
//  2. Otherwise palette is walked in order and the first register held by
//     no already-colored neighbor is assigned.
//
// There is no coalescing, live-range splitting, rematerialization, or
// spilling. If a temporary's neighbors have exhausted every register in
// palette, allocation has no legal coloring to fall back to and this
// panics - per the project's policy of constructing valid IR or aborting,
// there is no recoverable path from here.
func Allocate(g *Graph, restr Restrictions, palette []PhysReg) Assignment {
	assigned := make(Assignment, len(g.Nodes()))
	for _, t := range g.Nodes() {
		if pref, ok := restr.Lookup(t); ok && freeAt(g, assigned, t, pref) {
			assigned[t] = pref
			continue
		}
		reg, ok := firstFree(g, assigned, t, palette)
		if !ok {
			panic(fmt.Sprintf(
				"regalloc: no free register for temporary t%d (degree %d, palette size %d); spilling is not supported",
				t, len(g.Neighbors(t)), len(palette)))
		}
		assigned[t] = reg
	}
	return assigned
}

func freeAt(g *Graph, assigned Assignment, t ir.TempID, reg PhysReg) bool {
	for _, n := range g.Neighbors(t) {
		if r, ok := assigned[n]; ok && r == reg {
			return false
		}
	}
	return true
}

func firstFree(g *Graph, assigned Assignment, t ir.TempID, palette []PhysReg) (PhysReg, bool) {
	for _, reg := range palette {
		if freeAt(g, assigned, t, reg) {
			return reg, true
		}
	}
	return 0, false
}
