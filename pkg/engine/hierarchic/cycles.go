package hierarchic

import "github.com/matzehuels/graphlayout/pkg/graph"

// RemoveCycles makes c acyclic. It orders the vertices greedily: sinks are
// peeled off towards the end of the order and sources towards the front,
// and when neither exists the vertex with the largest out-degree minus
// in-degree goes to the front. Every edge pointing backwards in the order
// is then reversed through g and returned.
//
// Ties are broken by position in c.Vertices, so the result is deterministic.
func RemoveCycles(g *graph.Graph, c *graph.Cluster) (order []*graph.Vertex, reversed []*graph.Edge) {
	n := len(c.Vertices)
	index := make(map[*graph.Vertex]int, n)
	for i, v := range c.Vertices {
		index[v] = i
	}
	in := make([]int, n)
	out := make([]int, n)
	for i, v := range c.Vertices {
		in[i] = v.In.Len()
		out[i] = v.Out.Len()
	}
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	remove := func(i int) {
		alive[i] = false
		v := c.Vertices[i]
		for e := range v.In.All() {
			if j := index[e.From]; alive[j] {
				out[j]--
			}
		}
		for e := range v.Out.All() {
			if j := index[e.To]; alive[j] {
				in[j]--
			}
		}
	}

	var head, tail []*graph.Vertex
	remaining := n
	for remaining > 0 {
		for changed := true; changed; {
			changed = false
			for i, v := range c.Vertices {
				if alive[i] && out[i] == 0 {
					remove(i)
					tail = append(tail, v)
					remaining--
					changed = true
				}
			}
			for i, v := range c.Vertices {
				if alive[i] && in[i] == 0 {
					remove(i)
					head = append(head, v)
					remaining--
					changed = true
				}
			}
		}
		if remaining == 0 {
			break
		}
		best := -1
		for i := range c.Vertices {
			if alive[i] && (best < 0 || out[i]-in[i] > out[best]-in[best]) {
				best = i
			}
		}
		remove(best)
		head = append(head, c.Vertices[best])
		remaining--
	}

	order = head
	for i := len(tail) - 1; i >= 0; i-- {
		order = append(order, tail[i])
	}
	rank := make(map[*graph.Vertex]int, n)
	for i, v := range order {
		rank[v] = i
	}
	for _, e := range c.Edges {
		if rank[e.From] > rank[e.To] {
			g.Reverse(e)
			reversed = append(reversed, e)
		}
	}
	return order, reversed
}
