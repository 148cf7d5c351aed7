package graph

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

func newDiagram(t *testing.T, nodes []string, links [][2]string) *diagram.Memory {
	t.Helper()
	m := diagram.NewMemory()
	for i, id := range nodes {
		if _, err := m.AddNode(id, geom.Rect{X: float64(i) * 30, W: 20, H: 10}); err != nil {
			t.Fatalf("AddNode(%q) error = %v", id, err)
		}
	}
	for _, l := range links {
		if _, err := m.AddLink("", l[0], l[1]); err != nil {
			t.Fatalf("AddLink(%v) error = %v", l, err)
		}
	}
	return m
}

func TestBuildNil(t *testing.T) {
	_, err := Build(nil)
	if !lerrors.Is(err, lerrors.ErrCodeInvalidInput) {
		t.Errorf("Build(nil) error = %v, want %v", err, lerrors.ErrCodeInvalidInput)
	}
}

func TestBuild(t *testing.T) {
	m := newDiagram(t, []string{"a", "b", "c", "x"}, [][2]string{
		{"a", "b"}, {"b", "b"}, {"b", "c"}, {"a", "x"},
	})
	m.Node("x").SetExcluded(true)
	m.Link("b->c").SetExcluded(true)

	g, err := Build(m)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(g.Vertices) != 3 {
		t.Errorf("Vertices = %d, want 3", len(g.Vertices))
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if len(g.SelfLoops) != 1 || g.SelfLoops[0].ID() != "b->b" {
		t.Errorf("SelfLoops = %v, want [b->b]", g.SelfLoops)
	}

	a := g.VertexOf(m.Node("a"))
	if a.Pos != geom.Pt(10, 5) {
		t.Errorf("a.Pos = %v, want center (10,5)", a.Pos)
	}
	if a.Out.Len() != 1 || a.Out.First().To.Label() != "b" {
		t.Errorf("a out-edges = %v", a.Out.Edges())
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := New()
	h := New()
	m := newDiagram(t, []string{"a", "b"}, nil)
	a := g.AddVertex(m.Node("a"))
	b := h.AddVertex(m.Node("b"))

	if _, err := g.AddEdge(a, a, nil); err != ErrSelfLoop {
		t.Errorf("AddEdge(a,a) error = %v, want ErrSelfLoop", err)
	}
	if _, err := g.AddEdge(a, b, nil); err != ErrForeignVertex {
		t.Errorf("AddEdge(foreign) error = %v, want ErrForeignVertex", err)
	}
}

func TestReverse(t *testing.T) {
	g := New()
	a, b := g.AddDummy(1, 1), g.AddDummy(1, 1)
	e, _ := g.AddEdge(a, b, nil)
	e.Bends = []geom.Point{geom.Pt(1, 0), geom.Pt(2, 0)}

	g.Reverse(e)
	if e.From != b || e.To != a || !e.Reversed {
		t.Fatalf("Reverse() = %v->%v reversed=%v", e.From.ID, e.To.ID, e.Reversed)
	}
	if b.Out.Len() != 1 || a.In.Len() != 1 || a.Out.Len() != 0 {
		t.Error("Reverse() left adjacency inconsistent")
	}
	if e.Bends[0] != geom.Pt(2, 0) {
		t.Errorf("Reverse() bends = %v, want reversed", e.Bends)
	}
}

func TestEdgeSetOrder(t *testing.T) {
	var s EdgeSet
	edges := make([]*Edge, 40)
	for i := range edges {
		edges[i] = &Edge{ID: i}
		s.Add(edges[i])
	}
	if s.Add(edges[0]) {
		t.Error("Add(duplicate) = true, want false")
	}
	for i := 0; i < 30; i++ {
		s.Remove(edges[i])
	}
	extra := &Edge{ID: 99}
	s.Add(extra)

	got := s.Edges()
	if len(got) != 11 || s.Len() != 11 {
		t.Fatalf("Edges() len = %d, Len() = %d, want 11", len(got), s.Len())
	}
	for i := 0; i < 10; i++ {
		if got[i].ID != 30+i {
			t.Errorf("Edges()[%d].ID = %d, want %d", i, got[i].ID, 30+i)
		}
	}
	if got[10] != extra || !s.Contains(extra) || s.Contains(edges[0]) {
		t.Error("EdgeSet lost insertion order after compaction")
	}
	if s.First().ID != 30 {
		t.Errorf("First().ID = %d, want 30", s.First().ID)
	}
}

func TestClustersSingleton(t *testing.T) {
	m := newDiagram(t, []string{"solo"}, nil)
	g, _ := Build(m)
	cs := g.Clusters()
	if len(cs) != 1 || len(cs[0].Vertices) != 1 || cs[0].Index != 1 {
		t.Fatalf("Clusters() = %+v, want one singleton", cs)
	}
}

func TestClustersDFSOrder(t *testing.T) {
	m := newDiagram(t, []string{"a", "b", "c", "d", "e"}, [][2]string{
		{"a", "b"}, {"c", "a"}, {"b", "d"},
	})
	g, _ := Build(m)
	cs := g.Clusters()
	if len(cs) != 2 {
		t.Fatalf("Clusters() = %d, want 2", len(cs))
	}
	var got string
	for _, v := range cs[0].Vertices {
		got += v.Label()
	}
	if got != "abdc" {
		t.Errorf("cluster order = %q, want %q", got, "abdc")
	}
	if len(cs[0].Edges) != 3 || len(cs[1].Edges) != 0 {
		t.Errorf("cluster edges = %d,%d, want 3,0", len(cs[0].Edges), len(cs[1].Edges))
	}
}

// TestClustersPartition checks components against gonum on random graphs.
func TestClustersPartition(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7^0xdeadbeef))
	for round := 0; round < 25; round++ {
		n := 1 + rng.IntN(30)
		g := New()
		oracle := simple.NewUndirectedGraph()
		for i := 0; i < n; i++ {
			g.AddDummy(1, 1)
			oracle.AddNode(simple.Node(i))
		}
		for k := rng.IntN(n + 1); k > 0; k-- {
			a, b := rng.IntN(n), rng.IntN(n)
			if a == b {
				continue
			}
			g.AddEdge(g.Vertices[a], g.Vertices[b], nil)
			oracle.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
		}

		clusters := g.Clusters()
		want := topo.ConnectedComponents(oracle)
		if len(clusters) != len(want) {
			t.Fatalf("round %d: Clusters() = %d, want %d", round, len(clusters), len(want))
		}

		seen := make(map[int]int)
		for _, c := range clusters {
			for _, v := range c.Vertices {
				seen[v.ID]++
			}
		}
		if len(seen) != n {
			t.Errorf("round %d: union covers %d vertices, want %d", round, len(seen), n)
		}
		for id, k := range seen {
			if k != 1 {
				t.Errorf("round %d: vertex %d in %d clusters", round, id, k)
			}
		}
	}
}

func TestFindCycleEdge(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11^0xdeadbeef))
	for round := 0; round < 40; round++ {
		n := 2 + rng.IntN(12)
		g := New()
		oracle := simple.NewDirectedGraph()
		for i := 0; i < n; i++ {
			g.AddDummy(1, 1)
			oracle.AddNode(simple.Node(i))
		}
		for k := rng.IntN(2 * n); k > 0; k-- {
			a, b := rng.IntN(n), rng.IntN(n)
			if a == b || oracle.HasEdgeFromTo(int64(a), int64(b)) {
				continue
			}
			g.AddEdge(g.Vertices[a], g.Vertices[b], nil)
			oracle.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
		}

		_, sortErr := topo.Sort(oracle)
		acyclic := sortErr == nil
		for _, c := range g.Clusters() {
			if e := c.FindCycleEdge(); e != nil && acyclic {
				t.Fatalf("round %d: FindCycleEdge() = %d->%d on a DAG", round, e.From.ID, e.To.ID)
			}
		}
		if !acyclic {
			found := false
			for _, c := range g.Clusters() {
				found = found || c.FindCycleEdge() != nil
			}
			if !found {
				t.Errorf("round %d: FindCycleEdge() missed a cycle", round)
			}
		}
	}
}

func TestClusterTranslateAndBounds(t *testing.T) {
	g := New()
	a, b := g.AddDummy(10, 10), g.AddDummy(10, 10)
	b.Pos = geom.Pt(50, 0)
	e, _ := g.AddEdge(a, b, nil)
	e.Bends = []geom.Point{geom.Pt(25, 40)}

	c := g.Clusters()[0]
	if got := c.Bounds(); got != (geom.Rect{X: -5, Y: -5, W: 60, H: 45}) {
		t.Errorf("Bounds() = %v", got)
	}
	c.Translate(5, 5)
	if a.Pos != geom.Pt(5, 5) || e.Bends[0] != geom.Pt(30, 45) {
		t.Errorf("Translate() moved a=%v bend=%v", a.Pos, e.Bends[0])
	}
}

func TestCommit(t *testing.T) {
	m := newDiagram(t, []string{"a", "b"}, [][2]string{{"a", "b"}, {"a", "a"}, {"b", "a"}})
	m.Link("a->a").AddPoint(geom.Pt(0, 0))
	m.Link("a->a").AddPoint(geom.Pt(5, -5))

	g, _ := Build(m)
	a := g.VertexOf(m.Node("a"))
	b := g.VertexOf(m.Node("b"))
	a.Pos = geom.Pt(100, 100)
	b.Pos = geom.Pt(200, 100)
	edges := g.Edges()
	edges[0].Bends = []geom.Point{geom.Pt(150, 50)}
	g.Reverse(edges[1])

	g.Commit(m, CommitOptions{Orthogonal: true})

	if m.Commits() != 1 {
		t.Errorf("Commits() = %d, want 1", m.Commits())
	}
	if r := m.Node("a").Bounds(); r.X != 90 || r.Y != 95 {
		t.Errorf("a bounds = %v, want top-left (90,95)", r)
	}
	pts := m.Link("a->b").Points()
	if len(pts) != 3 || pts[0] != a.Pos || pts[1] != geom.Pt(150, 50) || pts[2] != b.Pos {
		t.Errorf("a->b points = %v", pts)
	}
	back := m.Link("b->a").Points()
	if len(back) != 2 || back[0] != b.Pos {
		t.Errorf("b->a points = %v, want to start at b", back)
	}
	loop := m.Link("a->a").Points()
	dx := a.Pos.X - 10
	if loop[1].X != 5+dx {
		t.Errorf("self-loop not translated: %v", loop)
	}
}
