// Package tree lays out rooted forests.
//
// Every cluster must be a rooted tree: no vertex may have more than one
// in-edge and the out-edges may not form a directed cycle. Both conditions
// are checked for all clusters before any coordinate changes; a violation
// is reported as a NOT_A_ROOTED_FOREST error naming the cluster.
//
// # Layered Style
//
// The layered style is Walker's refinement of Reingold–Tilford. A
// post-order walk assigns each vertex a preliminary x and a modifier:
// leaves sit right of their left sibling, parents are centered over their
// children, and subtrees are pushed right until they clear every left
// neighbour at every depth. The push is shared out among the sibling
// subtrees in between so they stay evenly spaced. A pre-order walk then sums
// the modifiers into final x coordinates.
//
// Layers are stacked with [Options.LayerDistance] between the bottom of the
// tallest vertex in one layer and the top of the next; siblings keep
// [Options.VertexDistance] between their boxes. Children appear in the order
// their out-edges were added.
//
// # Radial Style
//
// The radial style places the root at the center and each depth on a
// circle. Every vertex receives an angular wedge proportional to the number
// of leaves below it, capped so that a subtree cannot spread wider than its
// circle allows. Orientation is ignored in this style.
package tree
