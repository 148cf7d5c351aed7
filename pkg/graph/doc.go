// Package graph provides the per-invocation graph model the layout engines
// operate on.
//
// A [Graph] is built fresh from a host [diagram.Diagram] for every layout
// call and discarded after writeback. It owns no long-lived state and is
// never shared between engines or goroutines.
//
// # Architecture
//
// The package sits between the diagram adapter and the engines:
//
//	diagram.Diagram ──Build──▶ Graph ──Clusters──▶ []*Cluster ──engine──▶ Commit
//
// # Core Types
//
//   - [Vertex]: a node's center, size, movability and ordered adjacency
//   - [Edge]: an ordered (From, To) pair with bends and temporary flags
//   - [EdgeSet]: insertion-ordered edge set with O(1) removal
//   - [Cluster]: one connected component, the unit every engine lays out
//
// # Building
//
// [Build] enumerates the diagram's items. Nodes flagged excluded, links
// flagged excluded and links touching an excluded node never enter the
// model. Self-loops are kept aside in [Graph.SelfLoops] so that engines never
// see them; [Graph.Commit] only translates them with their node.
//
//	g, err := graph.Build(d)
//	for _, c := range g.Clusters() {
//	    // lay out c
//	}
//	g.Commit(d, graph.CommitOptions{})
//
// # Adjacency Order
//
// Several heuristics break ties by edge order, so every adjacency list
// iterates in insertion order. Vertices appear in diagram item order, edges
// in link order, and synthetic edges after the edges they replace.
//
// # Cluster Separation
//
// [Graph.Clusters] runs a depth-first traversal across all incident edges,
// ignoring direction, from each not-yet-visited vertex in vertex order. The
// traversal uses an explicit stack that reproduces the visiting order of the
// recursive formulation, so large graphs cannot overflow the call stack.
//
// # Writeback
//
// [Graph.Commit] writes positions (and optionally sizes) of every vertex
// backed by a node, and replaces every routed link's points with
// [origin center, bends..., destination center]. All writes happen inside one
// BeginUpdate/EndUpdate bracket.
package graph
