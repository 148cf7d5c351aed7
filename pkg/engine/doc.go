// Package engine holds what the five layout engines share: common options,
// orientation handling, cluster placement, run statistics and the seeded
// random source.
//
// # Engines
//
// Each engine lives in its own subpackage and exposes the same two entry
// points:
//
//	force.Layout(ctx, d, opts)   // build, arrange, commit
//	force.Arrange(ctx, g, opts)  // arrange an existing graph.Graph in place
//
// The engines are:
//
//   - force: GEM spring embedder with adaptive per-vertex temperature
//   - tree: layered (Walker) or radial drawing of rooted forests
//   - seriesparallel: visibility and bus-orthogonal drawings of SP digraphs
//   - orthogonal: Biedl–Kant grid embedding via st-numbering
//   - hierarchic: Sugiyama layering with crossing reduction
//
// # Logical Frame
//
// Layered engines compute in a logical frame where layers grow along +y.
// [Orient] maps that frame to the requested [Orientation] before [Placer]
// normalizes each cluster to non-negative coordinates and sets clusters
// left to right, separated by the horizontal margin.
//
// # Determinism
//
// Engines draw randomness only from [Common.RNG]. The same seed, input and
// options always yield the same layout.
package engine
