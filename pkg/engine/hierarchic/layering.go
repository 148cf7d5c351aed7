package hierarchic

import (
	"slices"

	"github.com/matzehuels/graphlayout/pkg/graph"
)

// AssignLayers assigns every vertex of the acyclic cluster c a layer
// number. Edges point from higher to lower layers and sinks sit on layer 1.
//
// With maxWidth zero the layering is longest-path: every vertex is one
// layer above the longest path below it. Otherwise Coffman–Graham layering
// puts at most maxWidth vertices on each layer.
func AssignLayers(c *graph.Cluster, maxWidth int) map[*graph.Vertex]int {
	if maxWidth > 0 {
		return coffmanGraham(c, maxWidth)
	}
	return longestPath(c)
}

func longestPath(c *graph.Cluster) map[*graph.Vertex]int {
	layer := make(map[*graph.Vertex]int, len(c.Vertices))
	pending := make(map[*graph.Vertex]int, len(c.Vertices))
	queue := make([]*graph.Vertex, 0, len(c.Vertices))
	for _, v := range c.Vertices {
		pending[v] = v.Out.Len()
		if pending[v] == 0 {
			layer[v] = 1
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		for e := range w.In.All() {
			u := e.From
			if l := layer[w] + 1; l > layer[u] {
				layer[u] = l
			}
			pending[u]--
			if pending[u] == 0 {
				queue = append(queue, u)
			}
		}
	}
	return layer
}

// coffmanGraham labels the vertices so that a vertex whose predecessors
// carry the lexicographically smallest decreasing label sequence is
// labelled first, then fills layers bottom-up taking the highest labelled
// vertex whose successors are all placed.
func coffmanGraham(c *graph.Cluster, width int) map[*graph.Vertex]int {
	n := len(c.Vertices)
	label := make(map[*graph.Vertex]int, n)

	predLabels := func(v *graph.Vertex) ([]int, bool) {
		var ls []int
		for e := range v.In.All() {
			l, ok := label[e.From]
			if !ok {
				return nil, false
			}
			ls = append(ls, l)
		}
		slices.SortFunc(ls, func(a, b int) int { return b - a })
		return ls, true
	}

	for next := 1; next <= n; next++ {
		var best *graph.Vertex
		var bestLabels []int
		for _, v := range c.Vertices {
			if _, done := label[v]; done {
				continue
			}
			ls, ready := predLabels(v)
			if !ready {
				continue
			}
			if best == nil || slices.Compare(ls, bestLabels) < 0 {
				best, bestLabels = v, ls
			}
		}
		label[best] = next
	}

	layer := make(map[*graph.Vertex]int, n)
	current, filled := 1, 0
	for placed := 0; placed < n; placed++ {
		var best *graph.Vertex
		for _, v := range c.Vertices {
			if _, done := layer[v]; done {
				continue
			}
			ready := true
			for e := range v.Out.All() {
				if _, ok := layer[e.To]; !ok {
					ready = false
					break
				}
			}
			if ready && (best == nil || label[v] > label[best]) {
				best = v
			}
		}
		below := true
		for e := range best.Out.All() {
			if layer[e.To] >= current {
				below = false
				break
			}
		}
		if filled >= width || !below {
			current++
			filled = 0
		}
		layer[best] = current
		filled++
	}
	return layer
}

// minimizeDummies moves vertices whose edges leave them a choice of layers
// to the end of their range that shortens the most edges, then closes
// empty layers. Every move strictly reduces the total edge span, so the
// loop ends. With a width bound, full layers are skipped.
func minimizeDummies(c *graph.Cluster, layer map[*graph.Vertex]int, maxWidth int) {
	top := 0
	count := make(map[int]int)
	for _, v := range c.Vertices {
		top = max(top, layer[v])
		count[layer[v]]++
	}

	for changed := true; changed; {
		changed = false
		for _, v := range c.Vertices {
			preds, succs := v.In.Len(), v.Out.Len()
			if preds == succs {
				continue
			}
			lo, hi := 1, top
			for e := range v.Out.All() {
				lo = max(lo, layer[e.To]+1)
			}
			for e := range v.In.All() {
				hi = min(hi, layer[e.From]-1)
			}
			target := lo
			if preds > succs {
				target = hi
			}
			if target == layer[v] || (maxWidth > 0 && count[target] >= maxWidth) {
				continue
			}
			count[layer[v]]--
			count[target]++
			layer[v] = target
			changed = true
		}
	}

	used := make([]int, 0, len(count))
	for l, k := range count {
		if k > 0 {
			used = append(used, l)
		}
	}
	slices.Sort(used)
	remap := make(map[int]int, len(used))
	for i, l := range used {
		remap[l] = i + 1
	}
	for _, v := range c.Vertices {
		layer[v] = remap[layer[v]]
	}
}
