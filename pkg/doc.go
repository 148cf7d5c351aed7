// Package pkg provides the libraries of graphlayout, a set of automatic
// layout engines for node-link diagrams.
//
// # Overview
//
// A host application describes its diagram through the adapter interfaces of
// [diagram]. An engine reads the visible nodes and links into a [graph],
// splits it into connected clusters, computes positions per cluster, places
// the clusters side by side and writes the result back in one update bracket.
//
// The packages are organized into three areas:
//
//  1. Layout: [geom], [graph], [diagram] and the engines below [engine]
//  2. Orchestration: [layout], [pipeline], [cache] and [observability]
//  3. Surfaces: [io], [render], [server] and [httputil]
//
// # Data Flow
//
//	JSON document / host diagram
//	         ↓
//	    [diagram] adapter (nodes, links, update bracket)
//	         ↓
//	    [graph] model (clusters, ordered edge sets)
//	         ↓
//	    engine (force, tree, seriesparallel, orthogonal, hierarchic)
//	         ↓
//	    JSON / SVG / DOT / PNG
//
// # Quick Start
//
//	m, _ := io.ImportJSON("graph.json")
//	cfg := layout.DefaultConfig()
//	cfg.Engine = "tree"
//	stats, err := layout.Run(ctx, m, cfg)
//	if err != nil {
//	    return err
//	}
//	svg, _ := render.SVGString(m, render.Options{Labels: true})
//
// Repeated runs of the same document and options can be served from a cache:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	res, err := runner.Execute(ctx, m, pipeline.Options{Config: cfg, Formats: []string{"svg"}})
//
// # Engines
//
//   - [engine/force]: GEM force-directed placement for arbitrary graphs
//   - [engine/tree]: layered (Walker) and radial trees for rooted forests
//   - [engine/seriesparallel]: decomposition based drawings of series-parallel digraphs
//   - [engine/orthogonal]: Biedl–Kant grid drawings with at most two bends per edge
//   - [engine/hierarchic]: Sugiyama layered drawings of arbitrary digraphs
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/geom
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/graph
// [diagram]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/diagram
// [engine]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/engine
// [engine/force]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/engine/force
// [engine/tree]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/engine/tree
// [engine/seriesparallel]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/engine/seriesparallel
// [engine/orthogonal]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/engine/orthogonal
// [engine/hierarchic]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/engine/hierarchic
// [layout]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/layout
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/render
// [server]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/server
// [httputil]: https://pkg.go.dev/github.com/matzehuels/graphlayout/pkg/httputil
package pkg
