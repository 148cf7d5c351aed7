// Package geom provides the axis-aligned rectangle and point helpers shared
// by every layout engine.
//
// Points are gonum [r2.Vec] values so engines can use the r2 vector
// arithmetic directly. Rectangles are stored as origin plus extent
// (X, Y, W, H); a union is the independent min/max on each axis.
//
// # Empty Rectangles
//
// The zero Rect is a valid degenerate rectangle at the origin. Functions
// that accumulate bounds take an "ok" flag or start from the first element
// rather than from the zero value, so an empty input never drags the bounds
// to (0, 0).
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in the drawing plane.
type Point = r2.Vec

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned box with top-left corner (X, Y) and size (W, H).
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Centered returns the rectangle of size (w, h) whose center is c.
func Centered(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	x0 := math.Min(r.X, s.X)
	y0 := math.Min(r.Y, s.Y)
	x1 := math.Max(r.Right(), s.Right())
	y1 := math.Max(r.Bottom(), s.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// UnionPoint returns the smallest rectangle containing r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(Rect{X: p.X, Y: p.Y})
}

// Contains reports whether s lies entirely inside r. Edges are inclusive.
func (r Rect) Contains(s Rect) bool {
	return s.X >= r.X && s.Y >= r.Y && s.Right() <= r.Right() && s.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether p lies inside r. Edges are inclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether r and s overlap with positive area.
func (r Rect) Intersects(s Rect) bool {
	return r.X < s.Right() && s.X < r.Right() && r.Y < s.Bottom() && s.Y < r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Bounds returns the union of all rectangles. ok is false when rects is empty.
func Bounds(rects []Rect) (b Rect, ok bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}
	b = rects[0]
	for _, r := range rects[1:] {
		b = b.Union(r)
	}
	return b, true
}

// PointBounds returns the bounding box of the points. ok is false when pts is empty.
func PointBounds(pts []Point) (b Rect, ok bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	b = Rect{X: pts[0].X, Y: pts[0].Y}
	for _, p := range pts[1:] {
		b = b.UnionPoint(p)
	}
	return b, true
}

// Finite reports whether p has no NaN or infinite component.
func Finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Collinear reports whether a, b and c lie on one axis-parallel or general
// line within eps.
func Collinear(a, b, c Point, eps float64) bool {
	return math.Abs(r2.Cross(r2.Sub(b, a), r2.Sub(c, a))) <= eps
}

// Simplify removes interior points of pts that are collinear with their
// neighbours, and consecutive duplicates. The first and last points are kept.
func Simplify(pts []Point, eps float64) []Point {
	if len(pts) <= 2 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if n := len(out); n > 0 && r2.Norm(r2.Sub(out[n-1], p)) <= eps {
			continue
		}
		for len(out) >= 2 && Collinear(out[len(out)-2], out[len(out)-1], p, eps) &&
			between(out[len(out)-2], out[len(out)-1], p) {
			out = out[:len(out)-1]
		}
		out = append(out, p)
	}
	return out
}

// between reports whether b lies within the bounding box of a and c, so
// removing it does not change the path's extent.
func between(a, b, c Point) bool {
	const eps = 1e-9
	return b.X >= math.Min(a.X, c.X)-eps && b.X <= math.Max(a.X, c.X)+eps &&
		b.Y >= math.Min(a.Y, c.Y)-eps && b.Y <= math.Max(a.Y, c.Y)+eps
}
