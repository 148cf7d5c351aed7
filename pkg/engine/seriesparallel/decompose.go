package seriesparallel

import (
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// Kind tags a decomposition-tree node.
type Kind int

const (
	Q Kind = iota // a single edge
	S             // series composition
	P             // parallel composition
)

func (k Kind) String() string {
	switch k {
	case Q:
		return "Q"
	case S:
		return "S"
	case P:
		return "P"
	}
	return "?"
}

// Node is a node of the canonical decomposition tree.
type Node struct {
	Kind     Kind
	Edge     *graph.Edge // set for Q nodes only
	Children []*Node     // empty for Q nodes

	// Source and Sink are the terminals of the subgraph the node spans.
	Source, Sink *graph.Vertex

	// Label is the symmetry class assigned by Symmetrize.
	Label int
	// Box is the node's drawing area in columns × levels.
	Box geom.Rect
}

// Leaves returns the number of Q nodes below n.
func (n *Node) Leaves() int {
	if n.Kind == Q {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.Leaves()
	}
	return total
}

// Walk visits n and its descendants in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func leaf(e *graph.Edge) *Node {
	return &Node{Kind: Q, Edge: e, Source: e.From, Sink: e.To}
}

// compose builds an S or P node whose children are a then b, splicing in
// the children of any operand of the same kind.
func compose(k Kind, a, b *Node) *Node {
	n := &Node{Kind: k, Source: a.Source, Sink: b.Sink}
	for _, c := range []*Node{a, b} {
		if c.Kind == k {
			n.Children = append(n.Children, c.Children...)
		} else {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// arc is an edge of the scratch multigraph used during reduction.
type arc struct {
	from, to int
	node     *Node
	dead     bool
}

type reducer struct {
	in, out  [][]*arc
	indeg    []int
	outdeg   []int
	alive    []bool
	vertices int
	arcs     int
}

func (r *reducer) add(a *arc) {
	r.out[a.from] = append(r.out[a.from], a)
	r.in[a.to] = append(r.in[a.to], a)
	r.outdeg[a.from]++
	r.indeg[a.to]++
	r.arcs++
}

func (r *reducer) kill(a *arc) {
	a.dead = true
	r.outdeg[a.from]--
	r.indeg[a.to]--
	r.arcs--
}

func (r *reducer) find(u, w int) *arc {
	for _, a := range r.out[u] {
		if !a.dead && a.to == w {
			return a
		}
	}
	return nil
}

func live(arcs []*arc) *arc {
	for _, a := range arcs {
		if !a.dead {
			return a
		}
	}
	return nil
}

// Decompose recognizes c as a two-terminal series-parallel digraph and
// returns its canonical decomposition tree. It returns nil for a cluster
// without edges. c is never modified.
func Decompose(c *graph.Cluster) (*Node, error) {
	if e := c.FindCycleEdge(); e != nil {
		return nil, lerrors.ForCluster(lerrors.ErrCodeNotAcyclic, c.Index,
			"edge %s->%s closes a cycle", e.From.Label(), e.To.Label())
	}
	if len(c.Edges) == 0 {
		return nil, nil
	}

	n := len(c.Vertices)
	index := make(map[*graph.Vertex]int, n)
	for i, v := range c.Vertices {
		index[v] = i
	}
	r := &reducer{
		in:       make([][]*arc, n),
		out:      make([][]*arc, n),
		indeg:    make([]int, n),
		outdeg:   make([]int, n),
		alive:    make([]bool, n),
		vertices: n,
	}
	for i := range r.alive {
		r.alive[i] = true
	}

	for _, e := range c.Edges {
		u, w := index[e.From], index[e.To]
		if a := r.find(u, w); a != nil {
			a.node = compose(P, a.node, leaf(e))
			continue
		}
		r.add(&arc{from: u, to: w, node: leaf(e)})
	}

	for !(r.vertices == 2 && r.arcs == 1) {
		v := -1
		for i := 0; i < n; i++ {
			if r.alive[i] && r.indeg[i] == 1 && r.outdeg[i] == 1 {
				v = i
				break
			}
		}
		if v < 0 {
			return nil, lerrors.ForCluster(lerrors.ErrCodeNotSeriesParallel, c.Index,
				"no series or parallel reduction applies with %d vertices and %d edges left", r.vertices, r.arcs)
		}

		a, b := live(r.in[v]), live(r.out[v])
		r.kill(a)
		r.kill(b)
		r.alive[v] = false
		r.vertices--
		r.in[v], r.out[v] = nil, nil

		s := compose(S, a.node, b.node)
		if existing := r.find(a.from, b.to); existing != nil {
			existing.node = compose(P, existing.node, s)
		} else {
			r.add(&arc{from: a.from, to: b.to, node: s})
		}
	}

	for i := 0; i < n; i++ {
		if r.alive[i] {
			if a := live(r.out[i]); a != nil {
				return a.node, nil
			}
		}
	}
	return nil, lerrors.ForCluster(lerrors.ErrCodeInternal, c.Index, "reduction lost its last edge")
}
