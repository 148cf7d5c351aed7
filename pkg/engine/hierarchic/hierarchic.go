package hierarchic

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// Name is the engine's registry name.
const Name = "hierarchic"

// Heuristic names a crossing reduction rule.
type Heuristic string

const (
	Barycenter Heuristic = "barycenter"
	Median     Heuristic = "median"
	Adjacent   Heuristic = "adjacent"
)

// Direction is the order in which a sweep visits the layers.
type Direction string

const (
	Down Direction = "down"
	Up   Direction = "up"
)

// Sweep is one crossing reduction pass, written "heuristic-direction".
type Sweep string

// DefaultSweeps is the sweep sequence used when none is configured.
var DefaultSweeps = []Sweep{"barycenter-down", "median-down", "adjacent-up"}

// Parse splits s into its heuristic and direction.
func (s Sweep) Parse() (Heuristic, Direction, error) {
	h, d, ok := strings.Cut(strings.ToLower(string(s)), "-")
	if !ok {
		return "", "", lerrors.New(lerrors.ErrCodeInvalidConfig, "sweep %q: want heuristic-direction", s)
	}
	switch Heuristic(h) {
	case Barycenter, Median, Adjacent:
	default:
		return "", "", lerrors.New(lerrors.ErrCodeInvalidConfig, "sweep %q: unknown heuristic %q", s, h)
	}
	switch Direction(d) {
	case Down, Up:
	default:
		return "", "", lerrors.New(lerrors.ErrCodeInvalidConfig, "sweep %q: unknown direction %q", s, d)
	}
	return Heuristic(h), Direction(d), nil
}

// Options configures the hierarchic engine.
type Options struct {
	LayerDistance  float64            `json:"layer_distance" toml:"layer_distance"`
	VertexDistance float64            `json:"vertex_distance" toml:"vertex_distance"`
	Orientation    engine.Orientation `json:"orientation" toml:"orientation"`
	// MaxLayerWidth bounds the number of vertices per layer. Zero means
	// unbounded and selects longest-path layering.
	MaxLayerWidth int     `json:"max_layer_width" toml:"max_layer_width"`
	Sweeps        []Sweep `json:"sweeps" toml:"sweeps"`
	// OnStep is called after every refinement round and may stop it.
	OnStep engine.StepFunc `json:"-" toml:"-"`

	engine.Common
}

// DefaultOptions returns distances of 50, facing north, with unbounded
// layers and the default sweeps.
func DefaultOptions() Options {
	return Options{
		LayerDistance:  50,
		VertexDistance: 50,
		Orientation:    engine.North,
		Sweeps:         append([]Sweep(nil), DefaultSweeps...),
		Common:         engine.DefaultCommon(),
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if err := lerrors.ValidatePositive("layer_distance", o.LayerDistance); err != nil {
		return err
	}
	if err := lerrors.ValidatePositive("vertex_distance", o.VertexDistance); err != nil {
		return err
	}
	if o.MaxLayerWidth < 0 {
		return lerrors.New(lerrors.ErrCodeInvalidConfig, "max_layer_width must be non-negative, got %d", o.MaxLayerWidth)
	}
	for _, s := range o.Sweeps {
		if _, _, err := s.Parse(); err != nil {
			return err
		}
	}
	if err := lerrors.ValidateOrientation(string(o.Orientation)); err != nil {
		return err
	}
	return o.Common.Validate()
}

// Layout arranges d and writes the result back.
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

// Arrange lays out every cluster of g in place. Dummy vertices exist only
// while a cluster is being laid out; on return every edge has its original
// direction and its bends.
func Arrange(ctx context.Context, g *graph.Graph, opts Options) (*engine.Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sweeps := opts.Sweeps
	if sweeps == nil {
		sweeps = DefaultSweeps
	}
	orient, _ := engine.ParseOrientation(string(opts.Orientation))
	logger := opts.Log()
	rng := opts.RNG()
	placer := opts.Placer()
	stats := &engine.Stats{Engine: Name}
	defer g.RemoveDummies()

	for _, c := range g.Clusters() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		edges := len(c.Edges)
		_, reversed := RemoveCycles(g, c)
		layers := AssignLayers(c, opts.MaxLayerWidth)
		minimizeDummies(c, layers, opts.MaxLayerWidth)

		h := newHierarchy(g, c, layers, orient, opts)
		before := h.crossings()
		for _, s := range sweeps {
			heur, dir, _ := s.Parse()
			h.sweep(heur, dir)
		}
		after := h.crossings()

		rounds, err := h.refine(ctx, rng)
		if err != nil {
			h.abandon()
			restore(g, reversed)
			return nil, err
		}
		bends := h.cleanup()
		restore(g, reversed)

		engine.Orient(orient, c)
		placer.Place(c)

		stats.Add(engine.Stats{
			Clusters:        1,
			Vertices:        len(c.Vertices),
			Edges:           edges,
			Iterations:      rounds,
			Dummies:         h.dummies,
			Bends:           bends,
			CrossingsBefore: before,
			Crossings:       after,
		})
		logger.Debug("hierarchic: cluster done", "cluster", c.Index, "vertices", len(c.Vertices),
			"layers", len(h.rows), "dummies", h.dummies, "reversed", len(reversed),
			"crossings_before", before, "crossings", after, "rounds", rounds)
	}
	return stats, nil
}

// restore flips the edges reversed by RemoveCycles back.
func restore(g *graph.Graph, reversed []*graph.Edge) {
	for _, e := range reversed {
		g.Reverse(e)
	}
}
