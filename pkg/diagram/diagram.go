package diagram

import "github.com/matzehuels/graphlayout/pkg/geom"

// Item is anything a diagram holds. Concrete items implement either [Node]
// or [Link]; items implementing neither are ignored by the layout engines.
type Item interface {
	ID() string
}

// Node is a positioned, sized box.
type Node interface {
	Item

	// Bounds returns the node's top-left corner and size.
	Bounds() geom.Rect
	// SetPosition moves the node's top-left corner.
	SetPosition(x, y float64)
	// SetSize resizes the node, keeping its top-left corner.
	SetSize(w, h float64)
	// Movable reports whether the node may move along each axis.
	Movable() (x, y bool)
	// Excluded reports whether the node is kept out of layout entirely.
	Excluded() bool
}

// Link connects an origin node to a destination node.
type Link interface {
	Item

	Origin() Node
	Destination() Node
	// Excluded reports whether the link is kept out of layout entirely.
	Excluded() bool
	// Pinned reports whether the link's points must not be rerouted.
	Pinned() bool
	// Points returns the link's current polyline, endpoints included.
	Points() []geom.Point

	SetPolyline()
	ClearPoints()
	AddPoint(p geom.Point)
	SetPoint(i int, p geom.Point)
	SetAdjustable(origin, destination bool)
}

// Diagram is the host collection of items.
type Diagram interface {
	// Items returns nodes and links in a stable order.
	Items() []Item

	// BeginUpdate opens a write transaction. Calls nest.
	BeginUpdate()
	// EndUpdate closes the innermost transaction opened by BeginUpdate.
	EndUpdate()
}

// Nodes returns the nodes among items in order.
func Nodes(d Diagram) []Node {
	var out []Node
	for _, it := range d.Items() {
		if n, ok := it.(Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// Links returns the links among items in order.
func Links(d Diagram) []Link {
	var out []Link
	for _, it := range d.Items() {
		if l, ok := it.(Link); ok {
			out = append(out, l)
		}
	}
	return out
}
