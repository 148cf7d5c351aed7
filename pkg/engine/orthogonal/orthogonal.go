package orthogonal

import (
	"context"
	"time"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// Name is the engine's registry name.
const Name = "orthogonal"

// Options configures the orthogonal engine.
type Options struct {
	Orientation engine.Orientation `json:"orientation" toml:"orientation"`
	GridWidth   float64            `json:"grid_width" toml:"grid_width"`
	GridHeight  float64            `json:"grid_height" toml:"grid_height"`
	// NodeRatio is the vertex size as a percentage of the grid cell.
	NodeRatio float64 `json:"node_ratio" toml:"node_ratio"`

	engine.Common
}

// DefaultOptions returns a 20×20 grid with vertices at half a cell, facing
// north.
func DefaultOptions() Options {
	return Options{
		Orientation: engine.North,
		GridWidth:   20,
		GridHeight:  20,
		NodeRatio:   50,
		Common:      engine.DefaultCommon(),
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if err := lerrors.ValidatePositive("grid_width", o.GridWidth); err != nil {
		return err
	}
	if err := lerrors.ValidatePositive("grid_height", o.GridHeight); err != nil {
		return err
	}
	if o.NodeRatio <= 0 || o.NodeRatio > 100 {
		return lerrors.New(lerrors.ErrCodeInvalidConfig, "node_ratio must be in (0, 100], got %g", o.NodeRatio)
	}
	if err := lerrors.ValidateOrientation(string(o.Orientation)); err != nil {
		return err
	}
	return o.Common.Validate()
}

// Layout arranges d and writes the result back, resizing every vertex.
func Layout(ctx context.Context, d diagram.Diagram, opts Options) (*engine.Stats, error) {
	start := time.Now()
	g, err := graph.Build(d)
	if err != nil {
		return nil, err
	}
	stats, err := Arrange(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	g.Commit(d, graph.CommitOptions{Resize: true, Orthogonal: true})
	stats.Duration = time.Since(start)
	return stats, nil
}

// Arrange lays out every cluster of g in place. It never fails on graph
// structure.
func Arrange(ctx context.Context, g *graph.Graph, opts Options) (*engine.Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	orient, _ := engine.ParseOrientation(string(opts.Orientation))
	logger := opts.Log()
	placer := opts.Placer()
	stats := &engine.Stats{Engine: Name}

	for _, c := range g.Clusters() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		order, augmented := STNumber(c)
		bends, cols := embed(c, order, opts, orient)
		engine.Orient(orient, c)
		placer.Place(c)

		stats.Add(engine.Stats{Clusters: 1, Vertices: len(c.Vertices), Edges: len(c.Edges), Bends: bends})
		logger.Debug("orthogonal: cluster done", "cluster", c.Index, "vertices", len(c.Vertices),
			"columns", cols, "bends", bends, "augmented", augmented)
	}
	return stats, nil
}
