package seriesparallel

import (
	"math"

	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// measure computes the natural size of every node in columns × levels.
func measure(n *Node) (w, h float64) {
	switch n.Kind {
	case Q:
		w, h = 1, 1
	case S:
		for _, c := range n.Children {
			cw, ch := measure(c)
			w = math.Max(w, cw)
			h += ch
		}
	case P:
		for _, c := range n.Children {
			cw, ch := measure(c)
			w += cw
			h = math.Max(h, ch)
		}
	}
	n.Box.W, n.Box.H = w, h
	return w, h
}

// place assigns n the box (x, y, w, h), stretching children to fill it. The
// last child of an S node absorbs extra height and the last child of a P
// node absorbs extra width.
func place(n *Node, x, y, w, h float64) {
	natW, natH := n.Box.W, n.Box.H
	n.Box = geom.Rect{X: x, Y: y, W: w, H: h}
	switch n.Kind {
	case S:
		extra := h - natH
		for i, c := range n.Children {
			ch := c.Box.H
			if i == len(n.Children)-1 {
				ch += extra
			}
			place(c, x, y, w, ch)
			y += ch
		}
	case P:
		extra := w - natW
		for i, c := range n.Children {
			cw := c.Box.W
			if i == len(n.Children)-1 {
				cw += extra
			}
			place(c, x, y, cw, h)
			x += cw
		}
	}
}

// span is a vertex's horizontal segment and level in grid units.
type span struct {
	x0, x1 float64
	level  float64
	set    bool
}

func (s *span) cover(x0, x1, level float64) {
	if !s.set {
		*s = span{x0: x0, x1: x1, level: level, set: true}
		return
	}
	s.x0 = math.Min(s.x0, x0)
	s.x1 = math.Max(s.x1, x1)
}

// draw computes the visibility representation of root and maps it to the
// requested style in the logical frame. It returns the number of bends.
func draw(root *Node, c *graph.Cluster, opts Options, o engine.Orientation) int {
	w, h := measure(root)
	place(root, 0, 0, w, h)

	spans := make(map[*graph.Vertex]*span, len(c.Vertices))
	for _, v := range c.Vertices {
		spans[v] = &span{}
	}
	var leaves []*Node
	root.Walk(func(n *Node) {
		if n.Kind != Q {
			return
		}
		leaves = append(leaves, n)
		b := n.Box
		spans[n.Source].cover(b.X, b.Right(), b.Y)
		spans[n.Sink].cover(b.X, b.Right(), b.Bottom())
	})

	vd, ld := opts.VertexDistance, opts.LayerDistance
	for _, v := range c.Vertices {
		s := spans[v]
		lw, lh := opts.VertexWidth, opts.VertexHeight
		if opts.Style == Visibility {
			lw = math.Max(lw, (s.x1-s.x0-0.5)*vd)
		}
		v.W, v.H = lw, lh
		if o.Transposed() {
			v.W, v.H = lh, lw
		}
		v.Pos = geom.Pt((s.x0+s.x1)/2*vd, s.level*ld)
	}

	bends := 0
	stub := ld / 4
	for _, n := range leaves {
		e := n.Edge
		e.Bends = nil
		col := (n.Box.X + n.Box.W/2) * vd
		from, to := e.From.Pos, e.To.Pos
		var path []geom.Point
		switch opts.Style {
		case Visibility:
			path = []geom.Point{from, geom.Pt(col, from.Y), geom.Pt(col, to.Y), to}
		case BusOrthogonal:
			path = []geom.Point{
				from,
				geom.Pt(from.X, from.Y+stub),
				geom.Pt(col, from.Y+stub),
				geom.Pt(col, to.Y-stub),
				geom.Pt(to.X, to.Y-stub),
				to,
			}
		default:
			continue
		}
		path = geom.Simplify(path, 1e-9)
		if len(path) > 2 {
			e.Bends = append([]geom.Point(nil), path[1:len(path)-1]...)
			bends += len(e.Bends)
		}
	}
	return bends
}
