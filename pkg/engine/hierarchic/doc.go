// Package hierarchic draws directed graphs in layers following the
// Sugiyama framework.
//
// Each cluster passes through a fixed sequence of phases:
//
//  1. Cycle removal: [RemoveCycles] orders the vertices with the greedy
//     heuristic of Eades, Lin and Smyth and reverses every edge that points
//     backwards in that order. Reversed edges carry [graph.Edge.Reversed].
//  2. Layering: [AssignLayers] puts every sink on layer 1 and every other
//     vertex one layer above its longest path to a sink. With
//     [Options.MaxLayerWidth] set, Coffman–Graham layering bounds the
//     number of vertices per layer instead. Vertices whose edges allow a
//     choice are then moved to the layer that needs the fewest dummies.
//  3. Subdivision: edges spanning more than one layer are replaced by
//     chains of small dummy vertices, one per intermediate layer.
//  4. Crossing reduction: the sweeps in [Options.Sweeps] run in order.
//     A sweep visits the layers top-down or bottom-up and applies one
//     heuristic per layer, keeping the neighbouring layer fixed.
//  5. Coordinate refinement: a one-dimensional GEM simulation moves
//     vertices along their layer. Repulsion only acts within a layer, and
//     a move that would overlap a neighbour is rejected, so the order from
//     step 4 survives.
//  6. Cleanup: dummy chains become bend points of the edge they replaced
//     and reversed edges regain their original direction.
//
// # Sweeps
//
// A sweep is written heuristic-direction, for example "median-down":
//
//   - barycenter: each vertex moves to the mean x of its fixed neighbours
//   - median: each vertex moves to the median x of its fixed neighbours
//   - adjacent: neighbours are swapped while that strictly reduces their
//     crossings
//
// The default sequence is barycenter-down, median-down, adjacent-up.
//
// # Crossings
//
// The number of crossings between adjacent layers is counted before and
// after the sweeps and reported in [engine.Stats]. The counts are
// informational; no phase consults them.
package hierarchic
