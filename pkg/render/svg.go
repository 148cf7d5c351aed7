package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/geom"
)

// Options configures SVG output.
type Options struct {
	// Padding is the blank border around the drawing. Zero means 10.
	Padding float64
	// Labels draws node IDs inside the nodes.
	Labels bool
}

const (
	defaultPadding = 10

	nodeStyle  = "fill:#ffffff;stroke:#333333;stroke-width:1"
	linkStyle  = "fill:none;stroke:#555555;stroke-width:1;marker-end:url(#arrow)"
	labelStyle = "fill:#111111;font-size:10px;font-family:system-ui,sans-serif;text-anchor:middle;dominant-baseline:middle"
)

// SVG writes the diagram to w. Excluded items are skipped.
func SVG(d diagram.Diagram, w io.Writer, opts Options) error {
	pad := opts.Padding
	if pad <= 0 {
		pad = defaultPadding
	}

	nodes := visibleNodes(d)
	links := visibleLinks(d)
	bounds, ok := drawingBounds(nodes, links)
	if !ok {
		bounds = geom.Rect{}
	}
	// Shift so the drawing starts at the padding.
	dx, dy := pad-bounds.X, pad-bounds.Y
	width := int(math.Ceil(bounds.W + 2*pad))
	height := int(math.Ceil(bounds.H + 2*pad))

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Def()
	canvas.Marker("arrow", 10, 5, 10, 10, `orient="auto" markerUnits="userSpaceOnUse"`)
	canvas.Path("M0,0 L10,5 L0,10 z", "fill:#555555")
	canvas.MarkerEnd()
	canvas.DefEnd()

	canvas.Gid("links")
	for _, l := range links {
		pts := route(l)
		xs := make([]int, len(pts))
		ys := make([]int, len(pts))
		for i, p := range pts {
			xs[i] = px(p.X + dx)
			ys[i] = px(p.Y + dy)
		}
		canvas.Polyline(xs, ys, linkStyle)
	}
	canvas.Gend()

	canvas.Gid("nodes")
	for _, n := range nodes {
		b := n.Bounds()
		canvas.Rect(px(b.X+dx), px(b.Y+dy), px(b.W), px(b.H), nodeStyle)
		if opts.Labels {
			c := b.Center()
			canvas.Text(px(c.X+dx), px(c.Y+dy), n.ID(), labelStyle)
		}
	}
	canvas.Gend()
	canvas.End()
	return nil
}

// px rounds a coordinate to the integer grid svgo draws on.
func px(v float64) int { return int(math.Round(v)) }

func visibleNodes(d diagram.Diagram) []diagram.Node {
	var out []diagram.Node
	for _, n := range diagram.Nodes(d) {
		if !n.Excluded() {
			out = append(out, n)
		}
	}
	return out
}

func visibleLinks(d diagram.Diagram) []diagram.Link {
	var out []diagram.Link
	for _, l := range diagram.Links(d) {
		if l.Excluded() || l.Origin().Excluded() || l.Destination().Excluded() {
			continue
		}
		out = append(out, l)
	}
	return out
}

// route returns the points a link is drawn through. A link without stored
// points is drawn center to center.
func route(l diagram.Link) []geom.Point {
	if pts := l.Points(); len(pts) >= 2 {
		return pts
	}
	return []geom.Point{l.Origin().Bounds().Center(), l.Destination().Bounds().Center()}
}

func drawingBounds(nodes []diagram.Node, links []diagram.Link) (geom.Rect, bool) {
	rects := make([]geom.Rect, 0, len(nodes)+len(links))
	for _, n := range nodes {
		rects = append(rects, n.Bounds())
	}
	for _, l := range links {
		if r, ok := geom.PointBounds(route(l)); ok {
			rects = append(rects, r)
		}
	}
	return geom.Bounds(rects)
}

// SVGString is a convenience wrapper around [SVG] for callers that want the
// document in memory.
func SVGString(d diagram.Diagram, opts Options) (string, error) {
	var sb strings.Builder
	if err := SVG(d, &sb, opts); err != nil {
		return "", fmt.Errorf("render svg: %w", err)
	}
	return sb.String(), nil
}
