// Package gem implements the per-vertex temperature physics of the GEM
// spring embedder. It is shared by the force engine and the hierarchic
// engine's coordinate refinement.
package gem

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	startTempFactor = 0.05
	maxTempFactor   = 0.1
	minTemp         = 2.0
	stopTempFactor  = 0.05

	shake       = 0.1
	gravity     = 0.05
	oscillation = 0.6
	rotation    = 0.9

	// MaxRounds caps the number of rounds regardless of graph size.
	MaxRounds = 1000

	eps = 1e-9
)

var cos45 = math.Cos(math.Pi / 4)

// Params holds the physics constants derived from the target distance.
type Params struct {
	Distance  float64
	StartTemp float64
	MaxTemp   float64
	StopTemp  float64
}

// NewParams returns the constants for target edge length d.
func NewParams(d float64) Params {
	return Params{
		Distance:  d,
		StartTemp: startTempFactor * d,
		MaxTemp:   maxTempFactor * d,
		StopTemp:  stopTempFactor * d,
	}
}

// Rounds returns min(3·n², MaxRounds).
func Rounds(n int) int {
	r := 3 * n * n
	if r > MaxRounds {
		return MaxRounds
	}
	return r
}

// Cooled reports whether the total squared heat of n bodies dropped below the
// stop threshold.
func (p Params) Cooled(sumHeat2 float64, n int) bool {
	return sumHeat2 < float64(n)*p.StopTemp*p.StopTemp
}

// Body is the mutable simulation state of one vertex.
type Body struct {
	Mass float64
	Heat float64
	// Dir is the previous normalized impulse, zero before the first move.
	Dir r2.Vec
}

// NewBody returns a body for a vertex of the given degree.
func (p Params) NewBody(degree int) Body {
	return Body{Mass: 1 + float64(degree)/3, Heat: p.StartTemp}
}

// Jitter returns a small random push.
func (p Params) Jitter(rng *rand.Rand) r2.Vec {
	return r2.Vec{
		X: (rng.Float64() - 0.5) * shake * p.Distance,
		Y: (rng.Float64() - 0.5) * shake * p.Distance,
	}
}

// Gravity pulls pos toward the barycenter center.
func (p Params) Gravity(b Body, pos, center r2.Vec) r2.Vec {
	return r2.Scale(b.Mass*gravity, r2.Sub(center, pos))
}

// Repulsion pushes along d = pos - other, scaled by D²/(|d|²·mass).
// Coincident points contribute nothing. Dividing by the mass like
// [Params.Attraction] puts the rest length of a single edge at D.
func (p Params) Repulsion(b Body, d r2.Vec) r2.Vec {
	n2 := r2.Norm2(d)
	if n2 < eps {
		return r2.Vec{}
	}
	return r2.Scale(p.Distance*p.Distance/(n2*b.Mass), d)
}

// Attraction pulls along d = pos - other, scaled by |d|²/(D²·mass).
func (p Params) Attraction(b Body, d r2.Vec) r2.Vec {
	n2 := r2.Norm2(d)
	return r2.Scale(-n2/(p.Distance*p.Distance*b.Mass), d)
}

// Step normalizes the impulse, adapts the body's heat from the angle to the
// previous impulse and returns the displacement impulse·heat. A zero impulse
// yields a zero displacement and leaves the body unchanged.
func (p Params) Step(b *Body, impulse r2.Vec) r2.Vec {
	n := r2.Norm(impulse)
	if n < eps || math.IsNaN(n) || math.IsInf(n, 0) {
		return r2.Vec{}
	}
	u := r2.Scale(1/n, impulse)

	if b.Dir != (r2.Vec{}) {
		cos := r2.Dot(u, b.Dir)
		switch {
		case cos >= cos45:
			b.Heat *= 1 + oscillation*cos
		case cos <= -cos45:
			b.Heat *= 1 + oscillation*cos
		default:
			sin := r2.Cross(u, b.Dir)
			b.Heat *= 1 - rotation*math.Abs(sin)*0.5
		}
		b.Heat = math.Max(minTemp, math.Min(b.Heat, p.MaxTemp))
	}
	b.Dir = u
	return r2.Scale(b.Heat, u)
}
