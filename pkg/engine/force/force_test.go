package force

import (
	"context"
	"testing"

	"github.com/matzehuels/graphlayout/pkg/diagram/diagramtest"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestTwoVerticesConverge(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		m := diagramtest.Parse(t, "a>b")
		opts := DefaultOptions()
		opts.Seed = seed

		stats, err := Layout(context.Background(), m, opts)
		require.NoError(t, err)

		d := r2.Norm(r2.Sub(diagramtest.Center(t, m, "a"), diagramtest.Center(t, m, "b")))
		assert.InDelta(t, 50, d, 5, "seed %d: distance", seed)
		assert.LessOrEqual(t, stats.Iterations, 12)
	}
}

func TestNoNonFiniteCoordinates(t *testing.T) {
	m := diagramtest.Parse(t, "a>b b>c c>a c>d d>e e>f f>d a>g x>y")
	for _, n := range m.NodeList() {
		n.SetPosition(0, 0)
	}
	opts := DefaultOptions()
	opts.Randomize = false

	_, err := Layout(context.Background(), m, opts)
	require.NoError(t, err)
	diagramtest.AssertNonNegative(t, m)
}

func TestClustersPlacedLeftToRight(t *testing.T) {
	m := diagramtest.Parse(t, "a>b b>c x>y z")
	_, err := Layout(context.Background(), m, DefaultOptions())
	require.NoError(t, err)

	left := m.Node("a").Bounds().Union(m.Node("b").Bounds()).Union(m.Node("c").Bounds())
	mid := m.Node("x").Bounds().Union(m.Node("y").Bounds())
	right := m.Node("z").Bounds()

	assert.InDelta(t, 5, left.X, 1e-9)
	assert.InDelta(t, 5, left.Y, 1e-9)
	assert.InDelta(t, left.Right()+5, mid.X, 1e-9)
	assert.InDelta(t, mid.Right()+5, right.X, 1e-9)
}

func TestHonorLockKeepsShape(t *testing.T) {
	m := diagramtest.Parse(t, "a>b b>c")
	m.Node("b").SetPosition(30, 40)
	for _, n := range m.NodeList() {
		n.SetLocked(true, true)
	}
	before := diagramtest.Positions(m)

	opts := DefaultOptions()
	opts.HonorLock = true
	_, err := Layout(context.Background(), m, opts)
	require.NoError(t, err)

	after := diagramtest.Positions(m)
	shift := r2.Sub(after["a"], before["a"])
	for id, p := range before {
		got := r2.Sub(after[id], p)
		assert.InDelta(t, shift.X, got.X, 1e-9, id)
		assert.InDelta(t, shift.Y, got.Y, 1e-9, id)
	}
}

func TestOnStepStopsEarly(t *testing.T) {
	m := diagramtest.Parse(t, "a>b b>c c>d")
	opts := DefaultOptions()
	calls := 0
	opts.OnStep = func(round int) bool {
		calls++
		return round == 1
	}
	stats, err := Layout(context.Background(), m, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Iterations)
	assert.Equal(t, 1, calls)
}

func TestCanceledContextLeavesDiagram(t *testing.T) {
	m := diagramtest.Parse(t, "a>b b>c")
	before := diagramtest.Positions(m)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Layout(ctx, m, DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, m.Commits())
	assert.Equal(t, before, diagramtest.Positions(m))
}

func TestDeterministicForSeed(t *testing.T) {
	run := func() map[string]geom.Point {
		m := diagramtest.Parse(t, "a>b a>c b>d c>d d>e")
		opts := DefaultOptions()
		opts.Seed = 99
		_, err := Layout(context.Background(), m, opts)
		require.NoError(t, err)
		return diagramtest.Positions(m)
	}
	assert.Equal(t, run(), run())
}

func TestRelayoutIsStable(t *testing.T) {
	m := diagramtest.Parse(t, "a>b")
	_, err := Layout(context.Background(), m, DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Randomize = false
	opts.Seed = 7
	_, err = Layout(context.Background(), m, opts)
	require.NoError(t, err)

	d := r2.Norm(r2.Sub(diagramtest.Center(t, m, "a"), diagramtest.Center(t, m, "b")))
	assert.InDelta(t, 50, d, 5)
}

func TestLinksAreStraight(t *testing.T) {
	m := diagramtest.Parse(t, "a>b")
	_, err := Layout(context.Background(), m, DefaultOptions())
	require.NoError(t, err)

	pts := m.Link("a->b").Points()
	require.Len(t, pts, 2)
	assert.Equal(t, diagramtest.Center(t, m, "a"), pts[0])
	assert.Equal(t, diagramtest.Center(t, m, "b"), pts[1])
}

func TestValidate(t *testing.T) {
	opts := DefaultOptions()
	opts.Distance = 0
	_, err := Layout(context.Background(), diagramtest.Parse(t, "a"), opts)
	assert.Error(t, err)
}
