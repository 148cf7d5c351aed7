// Package layout selects and runs a layout engine by name.
//
// # Engines
//
//   - force: GEM force-directed placement for arbitrary graphs
//   - tree: layered (Walker) or radial drawing of rooted forests
//   - seriesparallel: decomposition-based drawing of two-terminal
//     series-parallel digraphs
//   - orthogonal: Biedl–Kant grid drawing with axis-parallel edges
//   - hierarchic: Sugiyama layered drawing of arbitrary digraphs
//
// # Configuration
//
// A [Config] carries the engine name and one option block per engine, so a
// single file can tune every engine:
//
//	engine = "hierarchic"
//
//	[hierarchic]
//	layer_distance = 60
//	orientation = "W"
//	sweeps = ["median-down", "barycenter-up"]
//
//	[force]
//	distance = 40
//
// Keys that are not set keep the values of [DefaultConfig]. Unknown keys
// are rejected so typos surface as INVALID_CONFIG errors.
//
// # Running
//
//	cfg := layout.DefaultConfig()
//	cfg.Engine = "tree"
//	stats, err := layout.Run(ctx, doc, cfg)
//
// [Run] reports start and completion to the layout hooks registered with
// package observability.
package layout
