package graph

import (
	"errors"
	"fmt"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/geom"
)

var (
	// ErrForeignVertex is returned by [Graph.AddEdge] when an endpoint
	// belongs to a different graph.
	ErrForeignVertex = errors.New("vertex does not belong to this graph")

	// ErrSelfLoop is returned by [Graph.AddEdge] for an edge whose origin
	// equals its destination. Self-loops never enter the layout graph.
	ErrSelfLoop = errors.New("self-loop edges are not part of the layout graph")
)

// Vertex is one laid-out box. Pos is the center.
type Vertex struct {
	ID   int          // Dense index into Graph.Vertices
	Node diagram.Node // Backing node, nil for synthetic vertices
	Pos  geom.Point
	W, H float64

	MovableX, MovableY bool

	// Dummy marks synthetic vertices inserted by an engine.
	Dummy bool

	In  EdgeSet
	Out EdgeSet

	start geom.Point
	owner *Graph
}

// Degree returns the number of incident edges.
func (v *Vertex) Degree() int { return v.In.Len() + v.Out.Len() }

// Bounds returns the vertex box.
func (v *Vertex) Bounds() geom.Rect { return geom.Centered(v.Pos, v.W, v.H) }

// Label returns the backing node's ID, or a generated name for dummies.
func (v *Vertex) Label() string {
	if v.Node != nil {
		return v.Node.ID()
	}
	return fmt.Sprintf("~%d", v.ID)
}

// Incident returns out-edges followed by in-edges, each in insertion order.
func (v *Vertex) Incident() []*Edge {
	out := make([]*Edge, 0, v.Degree())
	out = append(out, v.Out.Edges()...)
	return append(out, v.In.Edges()...)
}

// Successors returns the destinations of the out-edges in order.
func (v *Vertex) Successors() []*Vertex {
	out := make([]*Vertex, 0, v.Out.Len())
	for e := range v.Out.All() {
		out = append(out, e.To)
	}
	return out
}

// Predecessors returns the origins of the in-edges in order.
func (v *Vertex) Predecessors() []*Vertex {
	out := make([]*Vertex, 0, v.In.Len())
	for e := range v.In.All() {
		out = append(out, e.From)
	}
	return out
}

// Moved returns the translation applied to the vertex since it was built.
func (v *Vertex) Moved() geom.Point {
	return geom.Pt(v.Pos.X-v.start.X, v.Pos.Y-v.start.Y)
}

// Edge is a directed connection in the layout graph.
type Edge struct {
	ID       int
	From, To *Vertex
	Link     diagram.Link // nil for synthetic edges
	Bends    []geom.Point

	// Reversed is set while the edge points against its link's direction.
	Reversed bool
	// Spanning is set on edges that cross more than one layer.
	Spanning bool
}

// Other returns the endpoint of e that is not v.
func (e *Edge) Other(v *Vertex) *Vertex {
	if e.From == v {
		return e.To
	}
	return e.From
}

// Graph is the layout model for one invocation.
type Graph struct {
	Vertices []*Vertex

	// SelfLoops holds links whose origin equals their destination. They are
	// only translated on commit.
	SelfLoops []diagram.Link

	edges  EdgeSet
	nextID int
	byNode map[diagram.Node]*Vertex
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{byNode: make(map[diagram.Node]*Vertex)}
}

// Build constructs the layout graph for d. It returns an INVALID_INPUT error
// when d is nil.
func Build(d diagram.Diagram) (*Graph, error) {
	if d == nil {
		return nil, lerrors.New(lerrors.ErrCodeInvalidInput, "no diagram supplied")
	}
	g := New()
	items := d.Items()
	for _, it := range items {
		if n, ok := it.(diagram.Node); ok && !n.Excluded() {
			g.AddVertex(n)
		}
	}
	for _, it := range items {
		l, ok := it.(diagram.Link)
		if !ok || l.Excluded() {
			continue
		}
		from, to := g.byNode[l.Origin()], g.byNode[l.Destination()]
		if from == nil || to == nil {
			continue
		}
		if from == to {
			g.SelfLoops = append(g.SelfLoops, l)
			continue
		}
		if _, err := g.AddEdge(from, to, l); err != nil {
			return nil, lerrors.Wrap(lerrors.ErrCodeInternal, err, "link %s", l.ID())
		}
	}
	return g, nil
}

// AddVertex adds a vertex backed by n, centered on n's bounds.
func (g *Graph) AddVertex(n diagram.Node) *Vertex {
	r := n.Bounds()
	mx, my := n.Movable()
	v := &Vertex{
		ID:       len(g.Vertices),
		Node:     n,
		Pos:      r.Center(),
		W:        r.W,
		H:        r.H,
		MovableX: mx,
		MovableY: my,
		owner:    g,
	}
	v.start = v.Pos
	g.Vertices = append(g.Vertices, v)
	g.byNode[n] = v
	return v
}

// AddDummy adds a synthetic vertex of the given size at the origin.
func (g *Graph) AddDummy(w, h float64) *Vertex {
	v := &Vertex{
		ID:       len(g.Vertices),
		W:        w,
		H:        h,
		MovableX: true,
		MovableY: true,
		Dummy:    true,
		owner:    g,
	}
	g.Vertices = append(g.Vertices, v)
	return v
}

// AddEdge connects from to to. link may be nil for synthetic edges.
func (g *Graph) AddEdge(from, to *Vertex, link diagram.Link) (*Edge, error) {
	if from.owner != g || to.owner != g {
		return nil, ErrForeignVertex
	}
	if from == to {
		return nil, ErrSelfLoop
	}
	e := &Edge{ID: g.nextID, From: from, To: to, Link: link}
	g.nextID++
	g.edges.Add(e)
	from.Out.Add(e)
	to.In.Add(e)
	return e, nil
}

// RemoveEdge detaches e from the graph.
func (g *Graph) RemoveEdge(e *Edge) {
	if !g.edges.Remove(e) {
		return
	}
	e.From.Out.Remove(e)
	e.To.In.Remove(e)
}

// Reverse flips e in place and toggles its Reversed flag. Bends are reversed
// too, so they stay attached to the same endpoints.
func (g *Graph) Reverse(e *Edge) {
	e.From.Out.Remove(e)
	e.To.In.Remove(e)
	e.From, e.To = e.To, e.From
	e.From.Out.Add(e)
	e.To.In.Add(e)
	e.Reversed = !e.Reversed
	for i, j := 0, len(e.Bends)-1; i < j; i, j = i+1, j-1 {
		e.Bends[i], e.Bends[j] = e.Bends[j], e.Bends[i]
	}
}

// RemoveDummies deletes every dummy vertex with its incident edges and
// renumbers the remaining vertices.
func (g *Graph) RemoveDummies() int {
	kept := g.Vertices[:0]
	removed := 0
	for _, v := range g.Vertices {
		if !v.Dummy {
			v.ID = len(kept)
			kept = append(kept, v)
			continue
		}
		for _, e := range v.Incident() {
			g.RemoveEdge(e)
		}
		removed++
	}
	clear(g.Vertices[len(kept):])
	g.Vertices = kept
	return removed
}

// Edges returns a snapshot of all edges in insertion order.
func (g *Graph) Edges() []*Edge { return g.edges.Edges() }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges.Len() }

// VertexOf returns the vertex backed by n, or nil.
func (g *Graph) VertexOf(n diagram.Node) *Vertex { return g.byNode[n] }

// Bounds returns the union of all non-dummy vertex boxes.
func (g *Graph) Bounds() (geom.Rect, bool) {
	var rects []geom.Rect
	for _, v := range g.Vertices {
		if !v.Dummy {
			rects = append(rects, v.Bounds())
		}
	}
	return geom.Bounds(rects)
}
