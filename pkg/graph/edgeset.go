package graph

import "iter"

// EdgeSet is an insertion-ordered set of edges.
//
// Removal leaves a tombstone and is O(1); tombstones are compacted on a later
// Add once they outnumber the live edges. The zero value is an empty set.
type EdgeSet struct {
	items []*Edge
	index map[*Edge]int
	live  int
}

// Add appends e if it is not already present and reports whether it was added.
func (s *EdgeSet) Add(e *Edge) bool {
	if s.index == nil {
		s.index = make(map[*Edge]int)
	}
	if _, ok := s.index[e]; ok {
		return false
	}
	if dead := len(s.items) - s.live; dead > 8 && dead > s.live {
		s.compact()
	}
	s.index[e] = len(s.items)
	s.items = append(s.items, e)
	s.live++
	return true
}

// Remove deletes e and reports whether it was present.
func (s *EdgeSet) Remove(e *Edge) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	s.items[i] = nil
	delete(s.index, e)
	s.live--
	return true
}

// Contains reports whether e is in the set.
func (s *EdgeSet) Contains(e *Edge) bool {
	_, ok := s.index[e]
	return ok
}

// Len returns the number of live edges.
func (s *EdgeSet) Len() int { return s.live }

// All iterates live edges in insertion order. The set must not be modified
// during iteration; use [EdgeSet.Edges] for a snapshot instead.
func (s *EdgeSet) All() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for _, e := range s.items {
			if e != nil && !yield(e) {
				return
			}
		}
	}
}

// Edges returns a snapshot of the live edges in insertion order.
func (s *EdgeSet) Edges() []*Edge {
	out := make([]*Edge, 0, s.live)
	for _, e := range s.items {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// First returns the oldest live edge, or nil.
func (s *EdgeSet) First() *Edge {
	for _, e := range s.items {
		if e != nil {
			return e
		}
	}
	return nil
}

func (s *EdgeSet) compact() {
	n := 0
	for _, e := range s.items {
		if e != nil {
			s.items[n] = e
			s.index[e] = n
			n++
		}
	}
	clear(s.items[n:])
	s.items = s.items[:n]
}
