package gem

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestRounds(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{1, 3},
		{2, 12},
		{18, 972},
		{19, MaxRounds},
	}
	for _, tt := range tests {
		if got := Rounds(tt.n); got != tt.want {
			t.Errorf("Rounds(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestRepulsionCoincident(t *testing.T) {
	p := NewParams(50)
	b := Body{Mass: 1}
	if got := p.Repulsion(b, r2.Vec{}); got != (r2.Vec{}) {
		t.Errorf("Repulsion(0) = %v, want zero", got)
	}
	got := p.Repulsion(b, r2.Vec{X: 50})
	if math.Abs(got.X-50) > 1e-9 || got.Y != 0 {
		t.Errorf("Repulsion(50,0) = %v, want (50,0)", got)
	}
}

func TestEdgeRestLength(t *testing.T) {
	p := NewParams(50)
	for _, degree := range []int{1, 2, 5} {
		b := p.NewBody(degree)
		d := r2.Vec{X: 30, Y: 40}
		net := r2.Add(p.Repulsion(b, d), p.Attraction(b, d))
		if r2.Norm(net) > 1e-9 {
			t.Errorf("degree %d: net force at distance 50 = %v, want zero", degree, net)
		}
	}
}

func TestAttractionOpposesOffset(t *testing.T) {
	p := NewParams(50)
	b := p.NewBody(3)
	if b.Mass != 2 {
		t.Fatalf("Mass = %v, want 2", b.Mass)
	}
	got := p.Attraction(b, r2.Vec{X: 100})
	if got.X >= 0 {
		t.Errorf("Attraction() = %v, want pull toward the neighbour", got)
	}
}

func TestStepHeat(t *testing.T) {
	p := NewParams(50)
	tests := []struct {
		name     string
		prev     r2.Vec
		impulse  r2.Vec
		wantHeat func(h float64) bool
	}{
		{"first move keeps heat", r2.Vec{}, r2.Vec{X: 3}, func(h float64) bool { return h == p.StartTemp }},
		{"same direction accelerates", r2.Vec{X: 1}, r2.Vec{X: 3}, func(h float64) bool { return h > p.StartTemp }},
		{"reversal damps", r2.Vec{X: 1}, r2.Vec{X: -3}, func(h float64) bool { return h < p.StartTemp }},
		{"rotation damps", r2.Vec{X: 1}, r2.Vec{Y: 3}, func(h float64) bool { return h < p.StartTemp }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := p.NewBody(1)
			b.Dir = tt.prev
			move := p.Step(&b, tt.impulse)
			if !tt.wantHeat(b.Heat) {
				t.Errorf("Heat = %v", b.Heat)
			}
			if math.Abs(r2.Norm(move)-b.Heat) > 1e-9 {
				t.Errorf("|move| = %v, want heat %v", r2.Norm(move), b.Heat)
			}
		})
	}
}

func TestStepClamps(t *testing.T) {
	p := NewParams(50)
	b := Body{Mass: 1, Heat: 1000, Dir: r2.Vec{X: 1}}
	p.Step(&b, r2.Vec{X: 1})
	if b.Heat != p.MaxTemp {
		t.Errorf("Heat = %v, want max %v", b.Heat, p.MaxTemp)
	}
	b = Body{Mass: 1, Heat: 2, Dir: r2.Vec{X: 1}}
	p.Step(&b, r2.Vec{X: -1})
	if b.Heat != minTemp {
		t.Errorf("Heat = %v, want min %v", b.Heat, minTemp)
	}
}

func TestStepZeroImpulse(t *testing.T) {
	p := NewParams(50)
	b := p.NewBody(0)
	if got := p.Step(&b, r2.Vec{}); got != (r2.Vec{}) {
		t.Errorf("Step(0) = %v, want zero", got)
	}
	if got := p.Step(&b, r2.Vec{X: math.NaN()}); got != (r2.Vec{}) {
		t.Errorf("Step(NaN) = %v, want zero", got)
	}
}
