package tree

import (
	"math"

	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

type node struct {
	v        *graph.Vertex
	w, h     float64 // logical size
	depth    int
	parent   *node
	children []*node
	left     *node // left sibling
	right    *node // right sibling
	neighbor *node // left neighbour on the same depth

	prelim, mod float64
	leaves      int
}

func (n *node) leaf() bool { return len(n.children) == 0 }

func (n *node) firstChild() *node {
	if n.leaf() {
		return nil
	}
	return n.children[0]
}

type tree struct {
	root   *node
	nodes  []*node
	layers [][]*node
	sep    float64
}

// build links the vertices of c below root into a first-child/right-sibling
// structure, with children in out-edge order.
func build(c *graph.Cluster, root *graph.Vertex, o engine.Orientation, radial bool) *tree {
	t := &tree{}
	var visit func(v *graph.Vertex, parent *node, depth int) *node
	visit = func(v *graph.Vertex, parent *node, depth int) *node {
		n := &node{v: v, parent: parent, depth: depth}
		if radial {
			n.w, n.h = v.W, v.H
		} else {
			n.w, n.h = engine.LogicalSize(o, v)
		}
		t.nodes = append(t.nodes, n)
		if depth == len(t.layers) {
			t.layers = append(t.layers, nil)
		}
		if layer := t.layers[depth]; len(layer) > 0 {
			n.neighbor = layer[len(layer)-1]
		}
		t.layers[depth] = append(t.layers[depth], n)

		var prev *node
		for _, child := range v.Successors() {
			cn := visit(child, n, depth+1)
			cn.left = prev
			if prev != nil {
				prev.right = cn
			}
			prev = cn
			n.children = append(n.children, cn)
		}
		return n
	}
	t.root = visit(root, nil, 0)
	return t
}

// layered places the tree with Walker's algorithm in the logical frame.
func (t *tree) layered(opts Options) {
	t.sep = opts.VertexDistance
	t.firstWalk(t.root)

	tops := make([]float64, len(t.layers))
	y := 0.0
	for i, layer := range t.layers {
		tops[i] = y
		maxH := 0.0
		for _, n := range layer {
			maxH = math.Max(maxH, n.h)
		}
		y += maxH + opts.LayerDistance
	}
	t.secondWalk(t.root, 0, tops)
}

func (t *tree) separation(l, r *node) float64 {
	return (l.w+r.w)/2 + t.sep
}

func (t *tree) firstWalk(n *node) {
	if n.leaf() {
		if n.left != nil {
			n.prelim = n.left.prelim + t.separation(n.left, n)
		}
		return
	}
	for _, c := range n.children {
		t.firstWalk(c)
	}
	first, last := n.children[0], n.children[len(n.children)-1]
	mid := (first.prelim + last.prelim) / 2
	if n.left != nil {
		n.prelim = n.left.prelim + t.separation(n.left, n)
		n.mod = n.prelim - mid
		t.apportion(n)
	} else {
		n.prelim = mid
	}
}

// apportion pushes the subtree at n right until its left contour clears the
// right contour of every subtree to its left, depth by depth. The push is
// spread over the sibling subtrees between n and the conflicting ancestor.
func (t *tree) apportion(n *node) {
	leftmost := n.firstChild()
	var neighbor *node
	if leftmost != nil {
		neighbor = leftmost.neighbor
	}
	compareDepth := 1
	for leftmost != nil && neighbor != nil {
		leftModSum, rightModSum := 0.0, 0.0
		ancLeftmost, ancNeighbor := leftmost, neighbor
		for i := 0; i < compareDepth; i++ {
			ancLeftmost = ancLeftmost.parent
			ancNeighbor = ancNeighbor.parent
			rightModSum += ancLeftmost.mod
			leftModSum += ancNeighbor.mod
		}

		move := neighbor.prelim + leftModSum + t.separation(neighbor, leftmost) - (leftmost.prelim + rightModSum)
		if move > 0 {
			between := 0
			p := n
			for p != nil && p != ancNeighbor {
				between++
				p = p.left
			}
			if p == nil {
				return
			}
			portion := move / float64(between)
			for p = n; p != ancNeighbor; p = p.left {
				p.prelim += move
				p.mod += move
				move -= portion
			}
		}

		compareDepth++
		if leftmost.leaf() {
			leftmost = t.leftmost(n, 0, compareDepth)
		} else {
			leftmost = leftmost.firstChild()
		}
		if leftmost != nil {
			neighbor = leftmost.neighbor
		}
	}
}

// leftmost returns the leftmost descendant of n that is depth levels below it.
func (t *tree) leftmost(n *node, level, depth int) *node {
	if level >= depth {
		return n
	}
	if n.leaf() {
		return nil
	}
	for _, c := range n.children {
		if m := t.leftmost(c, level+1, depth); m != nil {
			return m
		}
	}
	return nil
}

func (t *tree) secondWalk(n *node, modSum float64, tops []float64) {
	n.v.Pos = geom.Pt(n.prelim+modSum, tops[n.depth]+n.h/2)
	for _, c := range n.children {
		t.secondWalk(c, modSum+n.mod, tops)
	}
}
