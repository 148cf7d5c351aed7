package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
)

// pointsPerInch converts diagram units, taken as points, to the inches DOT
// uses for node sizes.
const pointsPerInch = 72.0

// ToDOT converts a diagram to a Graphviz digraph with every node pinned at
// its laid-out center. DOT's y axis points up, so y is negated.
func ToDOT(d diagram.Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  node [shape=box, fixedsize=true, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range visibleNodes(d) {
		b := n.Bounds()
		c := b.Center()
		fmt.Fprintf(&buf, "  %q [pos=\"%g,%g!\", width=%g, height=%g];\n",
			n.ID(), c.X, -c.Y, b.W/pointsPerInch, b.H/pointsPerInch)
	}

	buf.WriteString("\n")
	for _, l := range visibleLinks(d) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", l.Origin().ID(), l.Destination().ID())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT renders a DOT graph with neato to "svg" or "png".
func RenderDOT(ctx context.Context, dot, format string) ([]byte, error) {
	var f graphviz.Format
	switch strings.ToLower(format) {
	case "svg":
		f = graphviz.SVG
	case "png":
		f = graphviz.PNG
	default:
		return nil, lerrors.New(lerrors.ErrCodeInvalidFormat, "graphviz cannot render %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, f, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
