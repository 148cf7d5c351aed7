// Package render draws laid-out diagrams for preview.
//
// # SVG
//
// [SVG] writes the exact geometry of a diagram: every node as a rectangle
// labelled with its ID and every link as a polyline through its bend points,
// ending in an arrowhead. Nothing is re-laid-out, so the picture shows what
// the layout engine produced.
//
//	var buf bytes.Buffer
//	err := render.SVG(d, &buf, render.Options{})
//
// # DOT
//
// [ToDOT] emits a Graphviz digraph whose nodes are pinned at their laid-out
// centers. [RenderDOT] renders it with the neato engine, which honours
// pinned positions and only routes the edges, to SVG or PNG:
//
//	dot := render.ToDOT(d)
//	png, err := render.RenderDOT(ctx, dot, "png")
//
// Link bend points are not expressible as pinned DOT attributes, so DOT
// output shows Graphviz's own edge routing. Use [SVG] to inspect bends.
package render
