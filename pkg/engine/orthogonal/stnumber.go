package orthogonal

import (
	"slices"

	"github.com/matzehuels/graphlayout/pkg/graph"
)

// undirected returns the simple undirected adjacency of c in incident-edge
// order, indexed by position in c.Vertices.
func undirected(c *graph.Cluster) ([][]int, map[*graph.Vertex]int) {
	index := make(map[*graph.Vertex]int, len(c.Vertices))
	for i, v := range c.Vertices {
		index[v] = i
	}
	adj := make([][]int, len(c.Vertices))
	for i, v := range c.Vertices {
		for _, e := range v.Incident() {
			w := index[e.Other(v)]
			if !slices.Contains(adj[i], w) {
				adj[i] = append(adj[i], w)
			}
		}
	}
	return adj, index
}

// STNumber returns the vertices of c in st-order. When c is not biconnected
// the order comes from the graph augmented with a synthetic vertex, which
// is reported by augmented; every vertex still has an earlier neighbour
// except the first vertex of each block reached from the synthetic vertex.
func STNumber(c *graph.Cluster) (order []*graph.Vertex, augmented bool) {
	n := len(c.Vertices)
	if n <= 2 {
		return slices.Clone(c.Vertices), false
	}
	adj, _ := undirected(c)

	blocks, cut := biconnectedComponents(adj)
	var idx []int
	if len(blocks) == 1 {
		idx = stOrder(adj, 0, adj[0][0])
	} else {
		z := n
		adj = append(adj, nil)
		for _, b := range blocks {
			cuts := 0
			for _, v := range b {
				if cut[v] {
					cuts++
				}
			}
			if cuts != 1 {
				continue
			}
			for _, v := range b {
				if !cut[v] {
					adj[z] = append(adj[z], v)
					adj[v] = append(adj[v], z)
					break
				}
			}
		}
		idx = stOrder(adj, z, adj[z][0])
		idx = slices.DeleteFunc(idx, func(v int) bool { return v == z })
		augmented = true
	}

	order = make([]*graph.Vertex, len(idx))
	for i, v := range idx {
		order[i] = c.Vertices[v]
	}
	return order, augmented
}

// stOrder computes an st-order of the biconnected graph adj with s and t
// adjacent. The DFS visits t first from s; each vertex v is then inserted
// next to its parent p, before p when the sign of low(v) is minus (setting
// p's sign to plus) and after p otherwise (setting p's sign to minus).
func stOrder(adj [][]int, s, t int) []int {
	n := len(adj)
	pre := make([]int, n)
	parent := make([]int, n)
	low := make([]int, n)
	for i := range pre {
		pre[i] = -1
		parent[i] = -1
		low[i] = i
	}

	neighbors := func(v int) []int {
		if v != s {
			return adj[v]
		}
		out := []int{t}
		for _, w := range adj[s] {
			if w != t {
				out = append(out, w)
			}
		}
		return out
	}

	type frame struct {
		v    int
		next []int
	}
	var preorder []int
	pre[s] = 0
	preorder = append(preorder, s)
	stack := []frame{{v: s, next: neighbors(s)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.v
		if len(top.next) == 0 {
			stack = stack[:len(stack)-1]
			if p := parent[v]; p >= 0 && pre[low[v]] < pre[low[p]] {
				low[p] = low[v]
			}
			continue
		}
		w := top.next[0]
		top.next = top.next[1:]
		switch {
		case pre[w] < 0:
			parent[w] = v
			pre[w] = len(preorder)
			preorder = append(preorder, w)
			stack = append(stack, frame{v: w, next: neighbors(w)})
		case w != parent[v] && pre[w] < pre[low[v]]:
			low[v] = w
		}
	}

	const minus, plus = false, true
	sign := make([]bool, n)
	prev := make([]int, n)
	next := make([]int, n)
	for i := range prev {
		prev[i], next[i] = -1, -1
	}
	next[s], prev[t] = t, s
	sign[s] = minus

	for _, v := range preorder {
		if v == s || v == t {
			continue
		}
		p := parent[v]
		if sign[low[v]] == minus {
			// insert before p
			prev[v], next[v] = prev[p], p
			if prev[p] >= 0 {
				next[prev[p]] = v
			}
			prev[p] = v
			sign[p] = plus
		} else {
			prev[v], next[v] = p, next[p]
			if next[p] >= 0 {
				prev[next[p]] = v
			}
			next[p] = v
			sign[p] = minus
		}
	}

	head := s
	for prev[head] >= 0 {
		head = prev[head]
	}
	order := make([]int, 0, n)
	for v := head; v >= 0; v = next[v] {
		order = append(order, v)
	}
	return order
}

// biconnectedComponents returns the blocks of the connected graph adj as
// vertex lists, and marks its cut vertices.
func biconnectedComponents(adj [][]int) (blocks [][]int, cut []bool) {
	n := len(adj)
	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = -1
	}
	cut = make([]bool, n)

	type edge struct{ u, v int }
	type frame struct {
		v, parent int
		next      []int
		children  int
	}
	var edges []edge
	t := 0
	root := 0
	disc[root], low[root] = t, t
	t++
	stack := []frame{{v: root, parent: -1, next: adj[root]}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.v
		if len(top.next) == 0 {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			p := &stack[len(stack)-1]
			u := p.v
			low[u] = min(low[u], low[v])
			if low[v] >= disc[u] {
				if p.parent >= 0 || p.children > 1 {
					cut[u] = true
				}
				var block []int
				for {
					e := edges[len(edges)-1]
					edges = edges[:len(edges)-1]
					for _, x := range []int{e.u, e.v} {
						if !slices.Contains(block, x) {
							block = append(block, x)
						}
					}
					if e.u == u && e.v == v {
						break
					}
				}
				blocks = append(blocks, block)
			}
			continue
		}
		w := top.next[0]
		top.next = top.next[1:]
		switch {
		case disc[w] < 0:
			top.children++
			edges = append(edges, edge{v, w})
			disc[w], low[w] = t, t
			t++
			stack = append(stack, frame{v: w, parent: v, next: adj[w]})
		case w != top.parent && disc[w] < disc[v]:
			edges = append(edges, edge{v, w})
			low[v] = min(low[v], disc[w])
		}
	}
	return blocks, cut
}
