package regalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saumitralohokare/lubec/ir"
)

func TestAllocate_NoTwoInterferingTempsShareARegister(t *testing.T) {
	g := NewGraph()
	// A triangle of mutual interference: t0, t1, t2 all pairwise interfere.
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)

	asn := Allocate(g, Restrictions{}, []PhysReg{10, 11, 12})
	assert.NotEqual(t, asn.Lookup(0), asn.Lookup(1))
	assert.NotEqual(t, asn.Lookup(1), asn.Lookup(2))
	assert.NotEqual(t, asn.Lookup(0), asn.Lookup(2))
}

func TestAllocate_NonInterferingTempsMayShareARegister(t *testing.T) {
	g := NewGraph()
	g.AddNode(0)
	g.AddNode(1)

	asn := Allocate(g, Restrictions{}, []PhysReg{10})
	assert.Equal(t, PhysReg(10), asn.Lookup(0))
	assert.Equal(t, PhysReg(10), asn.Lookup(1))
}

func TestAllocate_HonorsRestrictionWhenFree(t *testing.T) {
	g := NewGraph()
	g.AddNode(0)

	restr := Restrictions{}
	restr.Prefer(0, 7)

	asn := Allocate(g, restr, []PhysReg{10, 11})
	assert.Equal(t, PhysReg(7), asn.Lookup(0))
}

func TestAllocate_FallsBackWhenRestrictionTaken(t *testing.T) {
	g := NewGraph()
	g.AddEdge(0, 1)

	restr := Restrictions{}
	restr.Prefer(0, 7)
	restr.Prefer(1, 7)

	asn := Allocate(g, restr, []PhysReg{7, 10})
	// t0 is visited first (ascending id) and claims the shared preference;
	// t1's neighbor holds it, so t1 must fall back to the palette.
	assert.Equal(t, PhysReg(7), asn.Lookup(ir.TempID(0)))
	assert.Equal(t, PhysReg(10), asn.Lookup(ir.TempID(1)))
}

func TestAllocate_PanicsWhenPaletteExhausted(t *testing.T) {
	g := NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)

	assert.Panics(t, func() {
		Allocate(g, Restrictions{}, []PhysReg{10, 11})
	})
}

func TestAllocate_IsolatedNodeStillColored(t *testing.T) {
	g := NewGraph()
	g.AddNode(5)
	asn := Allocate(g, Restrictions{}, []PhysReg{10})
	assert.Equal(t, PhysReg(10), asn.Lookup(5))
}
