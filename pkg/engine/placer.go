package engine

import (
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// Placer sets laid-out clusters side by side.
//
// Each call to Place translates a cluster so its bounding box starts MarginY
// below the top and MarginX right of the previous cluster's right edge (or
// of zero for the first cluster).
type Placer struct {
	MarginX, MarginY float64

	cursor float64
	bounds geom.Rect
	placed int
}

// Place normalizes c and advances the cursor past it.
func (p *Placer) Place(c *graph.Cluster) {
	b := c.Bounds()
	x := p.cursor + p.MarginX
	c.Translate(x-b.X, p.MarginY-b.Y)
	p.cursor = x + b.W

	placed := b.Translate(x-b.X, p.MarginY-b.Y)
	if p.placed == 0 {
		p.bounds = placed
	} else {
		p.bounds = p.bounds.Union(placed)
	}
	p.placed++
}

// Bounds returns the union of every placed cluster.
func (p *Placer) Bounds() geom.Rect { return p.bounds }

// Orient maps a cluster drawn in the logical frame (layers along +y) into
// orientation o. Vertex sizes are physical and left unchanged; engines that
// honour orientation lay out with [LogicalSize].
func Orient(o Orientation, c *graph.Cluster) {
	if o == "" || o == North {
		return
	}
	for _, v := range c.Vertices {
		v.Pos = orientPoint(o, v.Pos)
	}
	for _, e := range c.Edges {
		for i, b := range e.Bends {
			e.Bends[i] = orientPoint(o, b)
		}
	}
}

func orientPoint(o Orientation, p geom.Point) geom.Point {
	switch o {
	case South:
		return geom.Pt(p.X, -p.Y)
	case West:
		return geom.Pt(p.Y, p.X)
	case East:
		return geom.Pt(-p.Y, p.X)
	}
	return p
}

// LogicalSize returns the vertex size as seen in the logical frame.
func LogicalSize(o Orientation, v *graph.Vertex) (w, h float64) {
	if o.Transposed() {
		return v.H, v.W
	}
	return v.W, v.H
}
