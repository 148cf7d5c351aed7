package hierarchic

import (
	"slices"
)

// sweep applies heur to every row in the given direction. A downward sweep
// keeps the row above fixed, an upward sweep the row below.
func (h *hierarchy) sweep(heur Heuristic, dir Direction) {
	n := len(h.rows)
	if dir == Down {
		for r := 1; r < n; r++ {
			h.reorder(h.rows[r], heur, true)
		}
		return
	}
	for r := n - 2; r >= 0; r-- {
		h.reorder(h.rows[r], heur, false)
	}
}

func (h *hierarchy) reorder(row []*node, heur Heuristic, useUp bool) {
	fixed := func(n *node) []*node {
		if useUp {
			return n.up
		}
		return n.down
	}
	switch heur {
	case Adjacent:
		h.exchange(row, fixed)
	case Barycenter:
		h.place(row, func(n *node) float64 { return barycenter(n.x, fixed(n)) })
	case Median:
		h.place(row, func(n *node) float64 { return median(n.x, fixed(n)) })
	}
	for i, n := range row {
		n.pos = i
	}
}

// place moves every node of row to its key, sorts the row by key and
// separates overlapping neighbours.
func (h *hierarchy) place(row []*node, key func(*node) float64) {
	keys := make(map[*node]float64, len(row))
	for _, n := range row {
		keys[n] = key(n)
	}
	slices.SortStableFunc(row, func(a, b *node) int { return cmpFloat(keys[a], keys[b]) })
	for _, n := range row {
		n.x = keys[n]
	}
	h.pack(row)
}

// exchange swaps adjacent nodes while that strictly reduces the crossings
// of their edges to the fixed row. Swapped nodes trade x coordinates.
func (h *hierarchy) exchange(row []*node, fixed func(*node) []*node) {
	for pass := 0; pass < len(row); pass++ {
		swapped := false
		for i := 0; i+1 < len(row); i++ {
			l, r := row[i], row[i+1]
			if pairCrossings(fixed(r), fixed(l)) < pairCrossings(fixed(l), fixed(r)) {
				row[i], row[i+1] = r, l
				l.x, r.x = r.x, l.x
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	h.pack(row)
}

// barycenter returns the mean x of ns, or x when ns is empty.
func barycenter(x float64, ns []*node) float64 {
	if len(ns) == 0 {
		return x
	}
	sum := 0.0
	for _, n := range ns {
		sum += n.x
	}
	return sum / float64(len(ns))
}

// median returns the median x of ns, or x when ns is empty. Two and four
// neighbours give the mean of the middle pair. For larger even counts the
// middle pair is weighted towards the side whose neighbours are packed
// more tightly.
func median(x float64, ns []*node) float64 {
	if len(ns) == 0 {
		return x
	}
	xs := make([]float64, len(ns))
	for i, n := range ns {
		xs[i] = n.x
	}
	slices.Sort(xs)
	k := len(xs)
	m := k / 2
	switch {
	case k%2 == 1:
		return xs[m]
	case k <= 4:
		return (xs[m-1] + xs[m]) / 2
	}
	left := xs[m-1] - xs[0]
	right := xs[k-1] - xs[m]
	if left+right == 0 {
		return (xs[m-1] + xs[m]) / 2
	}
	return (xs[m-1]*right + xs[m]*left) / (left + right)
}

// pairCrossings counts the crossings between the edges of a left node to
// lnbr and of a right node to rnbr.
func pairCrossings(lnbr, rnbr []*node) int {
	crossings := 0
	for _, ln := range lnbr {
		for _, rn := range rnbr {
			if ln.pos > rn.pos {
				crossings++
			}
		}
	}
	return crossings
}

// crossings returns the total number of crossings between adjacent rows.
func (h *hierarchy) crossings() int {
	total := 0
	for r := 0; r+1 < len(h.rows); r++ {
		total += layerCrossings(h.rows[r], len(h.rows[r+1]))
	}
	return total
}

// layerCrossings counts crossings between upper and the row below it,
// which has width nodes. Two edges (u1,v1) and (u2,v2) cross iff
// pos(u1) < pos(u2) and pos(v1) > pos(v2), so the count is the number of
// inversions among the lower positions taken in upper order, counted with
// a Fenwick tree.
func layerCrossings(upper []*node, width int) int {
	fenwick := make([]int, width+1)
	crossings, total := 0, 0
	for _, u := range upper {
		targets := make([]int, len(u.down))
		for i, d := range u.down {
			targets[i] = d.pos
		}
		slices.Sort(targets)
		for _, t := range targets {
			lessOrEqual := 0
			for q := t + 1; q > 0; q -= q & (-q) {
				lessOrEqual += fenwick[q]
			}
			crossings += total - lessOrEqual
		}
		for _, t := range targets {
			total++
			for idx := t + 1; idx < len(fenwick); idx += idx & (-idx) {
				fenwick[idx]++
			}
		}
	}
	return crossings
}
