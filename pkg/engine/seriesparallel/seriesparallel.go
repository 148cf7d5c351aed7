package seriesparallel

import (
	"context"
	"time"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// Name is the engine's registry name.
const Name = "seriesparallel"

// Style selects how edges are drawn.
type Style string

const (
	BusOrthogonal Style = "busOrthogonal"
	StraightLine  Style = "straightLine"
	Visibility    Style = "visibility"
)

// Options configures the series-parallel engine.
type Options struct {
	LayerDistance  float64            `json:"layer_distance" toml:"layer_distance"`
	VertexDistance float64            `json:"vertex_distance" toml:"vertex_distance"`
	Style          Style              `json:"style" toml:"style"`
	Orientation    engine.Orientation `json:"orientation" toml:"orientation"`
	VertexWidth    float64            `json:"vertex_width" toml:"vertex_width"`
	VertexHeight   float64            `json:"vertex_height" toml:"vertex_height"`

	engine.Common
}

// DefaultOptions returns bus-orthogonal edges with distances of 80 and
// 20×20 vertices, facing north.
func DefaultOptions() Options {
	return Options{
		LayerDistance:  80,
		VertexDistance: 80,
		Style:          BusOrthogonal,
		Orientation:    engine.North,
		VertexWidth:    20,
		VertexHeight:   20,
		Common:         engine.DefaultCommon(),
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"layer_distance", o.LayerDistance},
		{"vertex_distance", o.VertexDistance},
		{"vertex_width", o.VertexWidth},
		{"vertex_height", o.VertexHeight},
	} {
		if err := lerrors.ValidatePositive(f.name, f.v); err != nil {
			return err
		}
	}
	switch o.Style {
	case BusOrthogonal, StraightLine, Visibility, "":
	default:
		return lerrors.New(lerrors.ErrCodeInvalidConfig, "unknown series-parallel style %q", o.Style)
	}
	if err := lerrors.ValidateOrientation(string(o.Orientation)); err != nil {
		return err
	}
	return o.Common.Validate()
}

// Layout arranges d and writes the result back, resizing every vertex.
// Nothing is written when a cluster is not a series-parallel digraph.
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
	g.Commit(d, graph.CommitOptions{Resize: true, Orthogonal: opts.Style != StraightLine})
	stats.Duration = time.Since(start)
	return stats, nil
}

// Arrange lays out every cluster of g in place. All clusters are recognized
// before any vertex moves.
func Arrange(ctx context.Context, g *graph.Graph, opts Options) (*engine.Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Style == "" {
		opts.Style = BusOrthogonal
	}
	orient, _ := engine.ParseOrientation(string(opts.Orientation))

	clusters := g.Clusters()
	trees := make([]*Node, len(clusters))
	for i, c := range clusters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := Decompose(c)
		if err != nil {
			return nil, err
		}
		trees[i] = t
	}

	logger := opts.Log()
	placer := opts.Placer()
	stats := &engine.Stats{Engine: Name}
	for i, c := range clusters {
		bends := 0
		if trees[i] == nil {
			v := c.Vertices[0]
			v.W, v.H = opts.VertexWidth, opts.VertexHeight
			v.Pos.X, v.Pos.Y = 0, 0
		} else {
			Symmetrize(trees[i])
			bends = draw(trees[i], c, opts, orient)
		}
		engine.Orient(orient, c)
		placer.Place(c)

		stats.Add(engine.Stats{Clusters: 1, Vertices: len(c.Vertices), Edges: len(c.Edges), Bends: bends})
		logger.Debug("seriesparallel: cluster done", "cluster", c.Index, "vertices", len(c.Vertices), "edges", len(c.Edges), "bends", bends)
	}
	return stats, nil
}
