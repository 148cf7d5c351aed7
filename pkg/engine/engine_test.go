package engine

import (
	"testing"

	"github.com/matzehuels/graphlayout/pkg/diagram/diagramtest"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"", North, false},
		{"n", North, false},
		{"S", South, false},
		{"w", West, false},
		{"E", East, false},
		{"up", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOrientation(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrientation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOrientation(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if tt.wantErr && !lerrors.Is(err, lerrors.ErrCodeInvalidConfig) {
			t.Errorf("ParseOrientation(%q) code = %q, want %q", tt.in, lerrors.GetCode(err), lerrors.ErrCodeInvalidConfig)
		}
	}
}

func TestOrientPoint(t *testing.T) {
	p := geom.Pt(3, 7)
	tests := []struct {
		o    Orientation
		want geom.Point
	}{
		{North, geom.Pt(3, 7)},
		{South, geom.Pt(3, -7)},
		{West, geom.Pt(7, 3)},
		{East, geom.Pt(-7, 3)},
	}
	for _, tt := range tests {
		if got := orientPoint(tt.o, p); got != tt.want {
			t.Errorf("orientPoint(%s, %v) = %v, want %v", tt.o, p, got, tt.want)
		}
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 10; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
	if NewRand(0).Uint64() != NewRand(DefaultSeed).Uint64() {
		t.Error("NewRand(0) should use DefaultSeed")
	}
}

func TestCommonValidate(t *testing.T) {
	c := DefaultCommon()
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultCommon().Validate() = %v", err)
	}
	c.MarginY = -1
	if err := c.Validate(); !lerrors.Is(err, lerrors.ErrCodeInvalidConfig) {
		t.Errorf("Validate() with negative margin = %v, want INVALID_CONFIG", err)
	}
}

func TestPlacerSetsClustersSideBySide(t *testing.T) {
	g, err := graph.Build(diagramtest.Parse(t, "a>b c"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	cs := g.Clusters()
	if len(cs) != 2 {
		t.Fatalf("Clusters() = %d, want 2", len(cs))
	}
	// a and b are 20x20 with centers 100 apart, c sits at a negative offset.
	cs[0].Vertices[0].Pos = geom.Pt(-50, -50)
	cs[0].Vertices[1].Pos = geom.Pt(50, -50)
	cs[1].Vertices[0].Pos = geom.Pt(-1000, 300)

	p := DefaultCommon().Placer()
	p.Place(cs[0])
	p.Place(cs[1])

	if got := cs[0].Bounds(); got != (geom.Rect{X: 5, Y: 5, W: 120, H: 20}) {
		t.Errorf("first cluster bounds = %+v", got)
	}
	if got := cs[1].Bounds(); got != (geom.Rect{X: 130, Y: 5, W: 20, H: 20}) {
		t.Errorf("second cluster bounds = %+v", got)
	}
	if got := p.Bounds(); got != (geom.Rect{X: 5, Y: 5, W: 145, H: 20}) {
		t.Errorf("Placer.Bounds() = %+v", got)
	}
}

func TestOrientKeepsSizes(t *testing.T) {
	g, err := graph.Build(diagramtest.Parse(t, "a>b"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	c := g.Clusters()[0]
	a := c.Vertices[0]
	a.W, a.H = 40, 10
	a.Pos = geom.Pt(1, 2)
	c.Edges[0].Bends = []geom.Point{geom.Pt(5, 6)}

	Orient(West, c)
	if a.Pos != geom.Pt(2, 1) {
		t.Errorf("a.Pos = %v, want (2,1)", a.Pos)
	}
	if c.Edges[0].Bends[0] != geom.Pt(6, 5) {
		t.Errorf("bend = %v, want (6,5)", c.Edges[0].Bends[0])
	}
	if w, h := LogicalSize(West, a); w != 10 || h != 40 {
		t.Errorf("LogicalSize(W) = %v,%v, want 10,40", w, h)
	}
	if w, h := LogicalSize(South, a); w != 40 || h != 10 {
		t.Errorf("LogicalSize(S) = %v,%v, want 40,10", w, h)
	}
}

func TestStatsAdd(t *testing.T) {
	s := Stats{Engine: "x"}
	s.Add(Stats{Clusters: 1, Vertices: 3, Edges: 2, Dummies: 1, Crossings: 4})
	s.Add(Stats{Clusters: 1, Vertices: 1, Bends: 2, CrossingsBefore: 5})
	want := Stats{Engine: "x", Clusters: 2, Vertices: 4, Edges: 2, Dummies: 1, Bends: 2, CrossingsBefore: 5, Crossings: 4}
	if s != want {
		t.Errorf("Add() = %+v, want %+v", s, want)
	}
}
