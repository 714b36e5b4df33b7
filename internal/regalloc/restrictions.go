package regalloc

import "github.com/saumitralohokare/lubec/ir"

// Restrictions records, for a subset of temporaries, the physical register
// the allocator should prefer. In practice this is populated for
// temporaries crossing an ABI boundary - a Call argument or a Return
// value - so that honoring the preference avoids an extra move at the
// boundary.
type Restrictions map[ir.TempID]PhysReg

// Prefer records that t should, if possible, be colored reg.
func (r Restrictions) Prefer(t ir.TempID, reg PhysReg) { r[t] = reg }

// Lookup returns t's preferred register, if one was recorded.
func (r Restrictions) Lookup(t ir.TempID) (PhysReg, bool) {
	reg, ok := r[t]
	return reg, ok
}
