package regalloc

import (
	"sort"

	"github.com/saumitralohokare/lubec/ir"
)

// Graph is an undirected interference graph over a procedure's
// temporaries: nodes are temporary identities, edges connect any two
// temporaries simultaneously live at some program point. It is
// represented as a map from temporary id to that temporary's adjacency
// set, and keeps isolated temporaries (no neighbors) present with an
// empty adjacency entry so they still get colored.
type Graph struct {
	adj   map[ir.TempID]map[ir.TempID]struct{}
	order []ir.TempID
}

// NewGraph returns an empty interference graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[ir.TempID]map[ir.TempID]struct{})}
}

// AddNode ensures t participates in the graph, even with no edges.
func (g *Graph) AddNode(t ir.TempID) {
	if _, ok := g.adj[t]; ok {
		return
	}
	g.adj[t] = make(map[ir.TempID]struct{})
	g.order = append(g.order, t)
}

// AddEdge records that a and b interfere. Both endpoints receive each
// other in their adjacency set, since interference is symmetric. A
// self-edge is a no-op: a temporary cannot interfere with itself.
func (g *Graph) AddEdge(a, b ir.TempID) {
	if a == b {
		return
	}
	g.AddNode(a)
	g.AddNode(b)
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// Neighbors returns t's interference neighbors in ascending id order.
func (g *Graph) Neighbors(t ir.TempID) []ir.TempID {
	ns := make([]ir.TempID, 0, len(g.adj[t]))
	for n := range g.adj[t] {
		ns = append(ns, n)
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
	return ns
}

// Nodes returns every temporary present in the graph in ascending id
// order. The allocator colors in this order, so it is also the order that
// determines reproducibility of the emitted assembly.
func (g *Graph) Nodes() []ir.TempID {
	out := append([]ir.TempID(nil), g.order...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
