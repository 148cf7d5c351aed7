package force

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/engine/internal/gem"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/graph"
	"gonum.org/v1/gonum/spatial/r2"
)

// Name is the engine's registry name.
const Name = "force"

// Options configures the force-directed engine.
type Options struct {
	// Distance is the target edge length.
	Distance float64 `json:"distance" toml:"distance"`
	// HonorLock keeps axis-locked nodes fixed along their locked axes.
	HonorLock bool `json:"honor_lock" toml:"honor_lock"`
	// Randomize scatters vertices before simulating. When false the current
	// positions are the starting point.
	Randomize bool `json:"randomize" toml:"randomize"`
	// OnStep is called after every round and may stop the simulation.
	OnStep engine.StepFunc `json:"-" toml:"-"`

	engine.Common
}

// DefaultOptions returns distance 50, margins 5 and random starts.
func DefaultOptions() Options {
	return Options{
		Distance:  50,
		Randomize: true,
		Common:    engine.DefaultCommon(),
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if err := lerrors.ValidatePositive("distance", o.Distance); err != nil {
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

// Arrange lays out every cluster of g in place.
func Arrange(ctx context.Context, g *graph.Graph, opts Options) (*engine.Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Log()
	rng := opts.RNG()
	placer := opts.Placer()
	stats := &engine.Stats{Engine: Name}

	for _, c := range g.Clusters() {
		s := newSimulation(c, opts, rng)
		rounds, err := s.run(ctx)
		if err != nil {
			return nil, err
		}
		placer.Place(c)

		stats.Add(engine.Stats{Clusters: 1, Vertices: len(c.Vertices), Edges: len(c.Edges), Iterations: rounds})
		logger.Debug("force: cluster done", "cluster", c.Index, "vertices", len(c.Vertices), "edges", len(c.Edges), "rounds", rounds)
	}
	return stats, nil
}

type simulation struct {
	p      gem.Params
	opts   Options
	rng    *rand.Rand
	vs     []*graph.Vertex
	bodies []gem.Body
	adj    [][]int
	sum    r2.Vec
}

func newSimulation(c *graph.Cluster, opts Options, rng *rand.Rand) *simulation {
	s := &simulation{
		p:      gem.NewParams(opts.Distance),
		opts:   opts,
		rng:    rng,
		vs:     c.Vertices,
		bodies: make([]gem.Body, len(c.Vertices)),
		adj:    make([][]int, len(c.Vertices)),
	}
	index := make(map[*graph.Vertex]int, len(c.Vertices))
	for i, v := range c.Vertices {
		index[v] = i
	}
	for _, e := range c.Edges {
		a, b := index[e.From], index[e.To]
		s.adj[a] = append(s.adj[a], b)
		s.adj[b] = append(s.adj[b], a)
	}
	for i, v := range c.Vertices {
		s.bodies[i] = s.p.NewBody(v.Degree())
	}
	return s
}

func (s *simulation) run(ctx context.Context) (int, error) {
	n := len(s.vs)
	if n < 2 {
		return 0, ctx.Err()
	}
	if s.opts.Randomize {
		s.scatter()
	}
	for _, v := range s.vs {
		s.sum = r2.Add(s.sum, v.Pos)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	limit := gem.Rounds(n)
	round := 0
	for round < limit {
		if err := ctx.Err(); err != nil {
			return round, err
		}
		for i := 0; i < n; i++ {
			j := i + s.rng.IntN(n-i)
			order[i], order[j] = order[j], order[i]
			s.update(order[i])
		}
		round++

		heat := 0.0
		for _, b := range s.bodies {
			heat += b.Heat * b.Heat
		}
		if s.p.Cooled(heat, n) {
			break
		}
		if s.opts.OnStep != nil && s.opts.OnStep(round) {
			break
		}
	}
	return round, nil
}

// scatter places every vertex uniformly in a square of side D·√(n/2), so a
// single edge starts no further than √2·D apart. Locked axes keep their
// coordinate.
func (s *simulation) scatter() {
	side := s.opts.Distance * math.Sqrt(float64(len(s.vs))/2)
	for _, v := range s.vs {
		x := s.rng.Float64() * side
		y := s.rng.Float64() * side
		if !s.opts.HonorLock || v.MovableX {
			v.Pos.X = x
		}
		if !s.opts.HonorLock || v.MovableY {
			v.Pos.Y = y
		}
	}
}

func (s *simulation) update(i int) {
	v := s.vs[i]
	b := &s.bodies[i]
	center := r2.Scale(1/float64(len(s.vs)), s.sum)

	imp := s.p.Jitter(s.rng)
	imp = r2.Add(imp, s.p.Gravity(*b, v.Pos, center))
	for j, u := range s.vs {
		if j != i {
			imp = r2.Add(imp, s.p.Repulsion(*b, r2.Sub(v.Pos, u.Pos)))
		}
	}
	for _, j := range s.adj[i] {
		imp = r2.Add(imp, s.p.Attraction(*b, r2.Sub(v.Pos, s.vs[j].Pos)))
	}

	move := s.p.Step(b, imp)
	if s.opts.HonorLock {
		if !v.MovableX {
			move.X = 0
		}
		if !v.MovableY {
			move.Y = 0
		}
	}
	v.Pos = r2.Add(v.Pos, move)
	s.sum = r2.Add(s.sum, move)
}
