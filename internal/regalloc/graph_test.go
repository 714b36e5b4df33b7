package regalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saumitralohokare/lubec/ir"
)

func TestGraph_NodesDeterministicAscendingOrder(t *testing.T) {
	g := NewGraph()
	g.AddNode(5)
	g.AddNode(1)
	g.AddNode(3)
	assert.Equal(t, []ir.TempID{1, 3, 5}, g.Nodes())
}

func TestGraph_EdgesAreSymmetric(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2)
	assert.Contains(t, g.Neighbors(1), ir.TempID(2))
	assert.Contains(t, g.Neighbors(2), ir.TempID(1))
}

func TestGraph_SelfEdgeIsNoOp(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 1)
	assert.Empty(t, g.Neighbors(1))
}

func TestGraph_IsolatedNodeHasEmptyAdjacency(t *testing.T) {
	g := NewGraph()
	g.AddNode(9)
	assert.Empty(t, g.Neighbors(9))
	assert.Contains(t, g.Nodes(), ir.TempID(9))
}
