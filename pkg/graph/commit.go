package graph

import (
	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// CommitOptions controls what [Graph.Commit] writes back.
type CommitOptions struct {
	// Resize writes vertex sizes as well as positions.
	Resize bool
	// Orthogonal marks routed links as non-adjustable so the host keeps the
	// computed endpoints.
	Orthogonal bool
}

// Commit writes the layout back to d inside a single update bracket.
//
// Every vertex backed by a node gets its new position (and size with
// opts.Resize). Every link in the graph that is not pinned becomes a
// polyline [origin center, bends..., destination center] in the link's own
// direction. Pinned links and self-loops keep their shape and are
// translated by their origin's displacement.
func (g *Graph) Commit(d diagram.Diagram, opts CommitOptions) {
	d.BeginUpdate()
	defer d.EndUpdate()

	for _, v := range g.Vertices {
		if v.Node == nil {
			continue
		}
		if opts.Resize {
			v.Node.SetSize(v.W, v.H)
		}
		r := v.Bounds()
		v.Node.SetPosition(r.X, r.Y)
	}

	for _, e := range g.Edges() {
		if e.Link == nil {
			continue
		}
		if e.Link.Pinned() {
			g.translateLink(e.Link)
			continue
		}
		from, to, bends := e.From, e.To, e.Bends
		if from.Node != e.Link.Origin() {
			from, to = to, from
			bends = reversed(bends)
		}
		l := e.Link
		l.SetPolyline()
		l.ClearPoints()
		l.AddPoint(from.Pos)
		for _, b := range bends {
			l.AddPoint(b)
		}
		l.AddPoint(to.Pos)
		l.SetAdjustable(!opts.Orthogonal, !opts.Orthogonal)
	}

	for _, l := range g.SelfLoops {
		g.translateLink(l)
	}
}

func (g *Graph) translateLink(l diagram.Link) {
	v := g.byNode[l.Origin()]
	if v == nil {
		return
	}
	d := v.Moved()
	if d == (geom.Point{}) {
		return
	}
	for i, p := range l.Points() {
		l.SetPoint(i, r2.Add(p, d))
	}
}

func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
