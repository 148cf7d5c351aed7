package tree

import (
	"math"

	"github.com/matzehuels/graphlayout/pkg/geom"
)

// radial places depth d on a circle of radius d·(LayerDistance + size),
// where size is the largest vertex dimension, so consecutive rings never
// overlap.
func (t *tree) radial(opts Options) {
	size := 0.0
	for _, n := range t.nodes {
		size = math.Max(size, math.Max(n.w, n.h))
	}
	step := opts.LayerDistance + size
	t.countLeaves(t.root)

	t.root.v.Pos = geom.Pt(0, 0)
	t.wedge(t.root, 0, 2*math.Pi, step)
}

func (t *tree) countLeaves(n *node) int {
	if n.leaf() {
		n.leaves = 1
		return 1
	}
	n.leaves = 0
	for _, c := range n.children {
		n.leaves += t.countLeaves(c)
	}
	return n.leaves
}

// wedge places the children of n inside the angular sector [from, from+span).
// The sector available to a non-root vertex is capped at
// 2·acos(ρ_d/ρ_{d+1}) around its own angle, the widest spread that keeps
// its subtree from crossing its neighbours' rings.
func (t *tree) wedge(n *node, from, span, step float64) {
	if n.leaf() {
		return
	}
	if n.depth > 0 {
		rho := float64(n.depth) * step
		next := float64(n.depth+1) * step
		if limit := 2 * math.Acos(rho/next); span > limit {
			center := from + span/2
			span = limit
			from = center - span/2
		}
	}
	radius := float64(n.depth+1) * step
	a := from
	for _, c := range n.children {
		share := span * float64(c.leaves) / float64(n.leaves)
		theta := a + share/2
		c.v.Pos = geom.Pt(radius*math.Cos(theta), radius*math.Sin(theta))
		t.wedge(c, a, share, step)
		a += share
	}
}
