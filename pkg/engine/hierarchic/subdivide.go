package hierarchic

import (
	"math"
	"slices"

	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// dummySize is the width and height of a dummy vertex.
const dummySize = 2.0

// node is a vertex placed on a row of the hierarchy. Row 0 is the top
// layer.
type node struct {
	v    *graph.Vertex
	row  int
	pos  int
	x    float64
	w    float64
	up   []*node
	down []*node
}

// chain records a long edge and the dummies that replace it.
type chain struct {
	edge    *graph.Edge
	dummies []*node
	segs    []*graph.Edge
}

// hierarchy is the layered form of one cluster. It owns the dummy vertices
// and edges it adds to g until cleanup.
type hierarchy struct {
	g    *graph.Graph
	opts Options

	rows    [][]*node
	ys      []float64
	nodes   []*node
	chains  []chain
	dummies int
}

// newHierarchy places the vertices of c on rows by layer, replaces every
// edge spanning more than one layer by a dummy chain and packs each row
// from the left in an initial order derived from the row above.
func newHierarchy(g *graph.Graph, c *graph.Cluster, layer map[*graph.Vertex]int, o engine.Orientation, opts Options) *hierarchy {
	top := 0
	for _, v := range c.Vertices {
		top = max(top, layer[v])
	}
	h := &hierarchy{g: g, opts: opts, rows: make([][]*node, top)}
	heights := make([]float64, top)

	byVertex := make(map[*graph.Vertex]*node, len(c.Vertices))
	add := func(v *graph.Vertex, row int) *node {
		w, ht := engine.LogicalSize(o, v)
		n := &node{v: v, row: row, w: w}
		h.rows[row] = append(h.rows[row], n)
		h.nodes = append(h.nodes, n)
		heights[row] = max(heights[row], ht)
		return n
	}
	link := func(a, b *node) {
		a.down = append(a.down, b)
		b.up = append(b.up, a)
	}

	for _, v := range c.Vertices {
		byVertex[v] = add(v, top-layer[v])
	}
	for _, e := range c.Edges {
		from, to := byVertex[e.From], byVertex[e.To]
		if to.row-from.row == 1 {
			link(from, to)
			continue
		}
		e.Spanning = true
		ch := chain{edge: e}
		prev := from
		for row := from.row + 1; row < to.row; row++ {
			d := add(g.AddDummy(dummySize, dummySize), row)
			ch.segs = append(ch.segs, h.mustEdge(prev.v, d.v))
			ch.dummies = append(ch.dummies, d)
			link(prev, d)
			prev = d
		}
		ch.segs = append(ch.segs, h.mustEdge(prev.v, to.v))
		link(prev, to)
		h.chains = append(h.chains, ch)
		h.dummies += len(ch.dummies)
	}

	y := 0.0
	h.ys = make([]float64, top)
	for r := range h.rows {
		h.ys[r] = y + heights[r]/2
		y += heights[r] + opts.LayerDistance
	}

	for r, row := range h.rows {
		if r > 0 {
			slices.SortStableFunc(row, func(a, b *node) int {
				return cmpFloat(firstPos(a.up), firstPos(b.up))
			})
		}
		for i, n := range row {
			n.pos = i
			n.x = math.Inf(-1)
		}
		h.pack(row)
	}
	return h
}

func (h *hierarchy) mustEdge(from, to *graph.Vertex) *graph.Edge {
	e, err := h.g.AddEdge(from, to, nil)
	if err != nil {
		panic(err)
	}
	return e
}

func firstPos(ns []*node) float64 {
	if len(ns) == 0 {
		return math.Inf(1)
	}
	p := ns[0].pos
	for _, n := range ns[1:] {
		p = min(p, n.pos)
	}
	return float64(p)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// sep is the minimum distance between the centers of neighbours a and b.
func (h *hierarchy) sep(a, b *node) float64 {
	return (a.w+b.w)/2 + h.opts.VertexDistance
}

// pack pushes the nodes of row right until neighbours are separated. The
// first node keeps its x, or moves to 0 if it has none.
func (h *hierarchy) pack(row []*node) {
	for i, n := range row {
		if i == 0 {
			if math.IsInf(n.x, -1) {
				n.x = 0
			}
			continue
		}
		n.x = max(n.x, row[i-1].x+h.sep(row[i-1], n))
	}
}

// cleanup writes the final positions into the vertices, turns every dummy
// chain into bends on its edge and removes the dummy edges from the graph.
// It returns the number of bends.
func (h *hierarchy) cleanup() int {
	for _, n := range h.nodes {
		n.v.Pos = geom.Pt(n.x, h.ys[n.row])
	}
	bends := 0
	for _, ch := range h.chains {
		e := ch.edge
		pts := make([]geom.Point, 0, len(ch.dummies)+2)
		pts = append(pts, e.From.Pos)
		for _, d := range ch.dummies {
			pts = append(pts, d.v.Pos)
		}
		pts = append(pts, e.To.Pos)
		pts = geom.Simplify(pts, 1e-6)
		e.Bends = slices.Clone(pts[1 : len(pts)-1])
		e.Spanning = false
		bends += len(e.Bends)
		for _, s := range ch.segs {
			h.g.RemoveEdge(s)
		}
	}
	return bends
}

// abandon clears the spanning marks of a hierarchy whose layout was cut
// short. The dummy vertices and their edges are left to RemoveDummies.
func (h *hierarchy) abandon() {
	for _, ch := range h.chains {
		ch.edge.Spanning = false
	}
}
