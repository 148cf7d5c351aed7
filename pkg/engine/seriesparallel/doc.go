// Package seriesparallel draws two-terminal series-parallel digraphs.
//
// # Recognition
//
// A cluster must be acyclic (NOT_ACYCLIC_DIGRAPH otherwise). Recognition
// works on a scratch copy of the cluster, so the graph is untouched when it
// fails. Every edge starts as a Q leaf; parallel edges between the same pair
// are merged into a P node up front. Then a redex, a vertex with exactly one
// in-edge and one out-edge, is removed repeatedly: its two edges become an S
// node, which is merged into an existing edge between the same endpoints as
// a P node or becomes a new edge. Recognition succeeds when two vertices and
// one edge remain, and fails with NOT_SERIES_PARALLEL when no redex is left
// before that.
//
// # Canonical Tree
//
// S and P nodes never have a child of their own kind; such children are
// flattened into their parent as the tree is built. The number of Q leaves
// equals the number of edges in the cluster.
//
// # Symmetry
//
// Every node gets an isomorphism label computed bottom-up: Q leaves share
// one label, S labels depend on the ordered child labels and P labels on
// the sorted child labels. The children of each P node are then reordered
// so that children with equal labels mirror each other around the center.
//
// # Drawing
//
// The visibility drawing assigns each node a box of columns × levels:
// S children are stacked and P children placed side by side, each stretched
// to fill the parent. Vertices become horizontal segments at their level and
// edges become vertical segments in their column. Three styles render this:
//
//   - Visibility: vertices are resized to their segment, edges are vertical.
//   - BusOrthogonal: vertices keep their size at the segment center and edges
//     leave through a short stub into a horizontal bus.
//   - StraightLine: vertices as in BusOrthogonal, edges drawn straight.
package seriesparallel
