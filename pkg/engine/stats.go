package engine

import "time"

// Stats summarizes one layout run.
type Stats struct {
	Engine     string        `json:"engine"`
	Clusters   int           `json:"clusters"`
	Vertices   int           `json:"vertices"`
	Edges      int           `json:"edges"`
	Iterations int           `json:"iterations,omitempty"`
	Dummies    int           `json:"dummies,omitempty"`
	Bends      int           `json:"bends,omitempty"`
	Duration   time.Duration `json:"duration"`

	// CrossingsBefore and Crossings count edge crossings between adjacent
	// layers before and after crossing reduction. Only the hierarchic
	// engine reports them.
	CrossingsBefore int `json:"crossings_before,omitempty"`
	Crossings       int `json:"crossings,omitempty"`
}

// Add folds per-cluster counters into s.
func (s *Stats) Add(o Stats) {
	s.Clusters += o.Clusters
	s.Vertices += o.Vertices
	s.Edges += o.Edges
	s.Iterations += o.Iterations
	s.Dummies += o.Dummies
	s.Bends += o.Bends
	s.CrossingsBefore += o.CrossingsBefore
	s.Crossings += o.Crossings
}
