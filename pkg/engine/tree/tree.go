package tree

import (
	"context"
	"time"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// Name is the engine's registry name.
const Name = "tree"

// Style selects the drawing style.
type Style string

const (
	Layered Style = "layered"
	Radial  Style = "radial"
)

// Options configures the tree engine.
type Options struct {
	LayerDistance  float64            `json:"layer_distance" toml:"layer_distance"`
	VertexDistance float64            `json:"vertex_distance" toml:"vertex_distance"`
	Style          Style              `json:"style" toml:"style"`
	Orientation    engine.Orientation `json:"orientation" toml:"orientation"`

	engine.Common
}

// DefaultOptions returns the layered style with distances of 50, facing north.
func DefaultOptions() Options {
	return Options{
		LayerDistance:  50,
		VertexDistance: 50,
		Style:          Layered,
		Orientation:    engine.North,
		Common:         engine.DefaultCommon(),
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if err := lerrors.ValidatePositive("layer_distance", o.LayerDistance); err != nil {
		return err
	}
	if err := lerrors.ValidateNonNegative("vertex_distance", o.VertexDistance); err != nil {
		return err
	}
	switch o.Style {
	case Layered, Radial, "":
	default:
		return lerrors.New(lerrors.ErrCodeInvalidConfig, "unknown tree style %q", o.Style)
	}
	if err := lerrors.ValidateOrientation(string(o.Orientation)); err != nil {
		return err
	}
	return o.Common.Validate()
}

// Layout arranges d and writes the result back. Nothing is written when any
// cluster is not a rooted tree.
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
	g.Commit(d, graph.CommitOptions{})
	stats.Duration = time.Since(start)
	return stats, nil
}

// Arrange lays out every cluster of g in place.
func Arrange(ctx context.Context, g *graph.Graph, opts Options) (*engine.Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	orient, _ := engine.ParseOrientation(string(opts.Orientation))

	clusters := g.Clusters()
	roots := make([]*graph.Vertex, len(clusters))
	for i, c := range clusters {
		root, err := Root(c)
		if err != nil {
			return nil, err
		}
		roots[i] = root
	}

	logger := opts.Log()
	placer := opts.Placer()
	stats := &engine.Stats{Engine: Name}
	for i, c := range clusters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := build(c, roots[i], orient, opts.Style == Radial)
		if opts.Style == Radial {
			t.radial(opts)
		} else {
			t.layered(opts)
			engine.Orient(orient, c)
		}
		placer.Place(c)

		stats.Add(engine.Stats{Clusters: 1, Vertices: len(c.Vertices), Edges: len(c.Edges)})
		logger.Debug("tree: cluster done", "cluster", c.Index, "vertices", len(c.Vertices), "depth", len(t.layers))
	}
	return stats, nil
}

// Root returns the root of c, or a NOT_A_ROOTED_FOREST error when c is not a
// rooted tree.
func Root(c *graph.Cluster) (*graph.Vertex, error) {
	var root *graph.Vertex
	for _, v := range c.Vertices {
		switch n := v.In.Len(); {
		case n > 1:
			return nil, lerrors.ForCluster(lerrors.ErrCodeNotARootedForest, c.Index,
				"vertex %s has %d incoming edges", v.Label(), n)
		case n == 0 && root == nil:
			root = v
		}
	}
	if e := c.FindCycleEdge(); e != nil {
		return nil, lerrors.ForCluster(lerrors.ErrCodeNotARootedForest, c.Index,
			"edge %s->%s closes a cycle", e.From.Label(), e.To.Label())
	}
	if root == nil {
		return nil, lerrors.ForCluster(lerrors.ErrCodeNotARootedForest, c.Index, "no root vertex")
	}
	return root, nil
}
