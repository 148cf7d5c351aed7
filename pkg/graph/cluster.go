package graph

import (
	"github.com/matzehuels/graphlayout/pkg/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Cluster is one connected component of a graph.
type Cluster struct {
	// Index is the 1-based position of the cluster in Graph.Clusters.
	Index    int
	Vertices []*Vertex
	Edges    []*Edge
}

// Clusters partitions the vertex set into connected components.
//
// Components are discovered from each unvisited vertex in vertex order.
// Within a component, vertices are listed in depth-first preorder following
// out-edges before in-edges, and edges in graph insertion order.
func (g *Graph) Clusters() []*Cluster {
	comp := make([]int, len(g.Vertices))
	for i := range comp {
		comp[i] = -1
	}

	type frame struct {
		v    *Vertex
		next []*Edge
	}

	var clusters []*Cluster
	for _, root := range g.Vertices {
		if comp[root.ID] >= 0 {
			continue
		}
		c := &Cluster{Index: len(clusters) + 1}
		idx := len(clusters)

		comp[root.ID] = idx
		c.Vertices = append(c.Vertices, root)
		stack := []frame{{v: root, next: root.Incident()}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.next[0]
			top.next = top.next[1:]
			w := e.Other(top.v)
			if comp[w.ID] >= 0 {
				continue
			}
			comp[w.ID] = idx
			c.Vertices = append(c.Vertices, w)
			stack = append(stack, frame{v: w, next: w.Incident()})
		}
		clusters = append(clusters, c)
	}

	for _, e := range g.Edges() {
		c := clusters[comp[e.From.ID]]
		c.Edges = append(c.Edges, e)
	}
	return clusters
}

// Bounds returns the union of the cluster's vertex boxes and edge bends.
func (c *Cluster) Bounds() geom.Rect {
	if len(c.Vertices) == 0 {
		return geom.Rect{}
	}
	b := c.Vertices[0].Bounds()
	for _, v := range c.Vertices[1:] {
		b = b.Union(v.Bounds())
	}
	for _, e := range c.Edges {
		for _, p := range e.Bends {
			b = b.UnionPoint(p)
		}
	}
	return b
}

// Translate moves every vertex and bend in the cluster by (dx, dy).
func (c *Cluster) Translate(dx, dy float64) {
	d := geom.Pt(dx, dy)
	for _, v := range c.Vertices {
		v.Pos = r2.Add(v.Pos, d)
	}
	for _, e := range c.Edges {
		for i := range e.Bends {
			e.Bends[i] = r2.Add(e.Bends[i], d)
		}
	}
}

// FindCycleEdge looks for a directed cycle using post-order DFS numbering
// along out-edges. An edge u→v with post(u) <= post(v) closes a cycle; the
// first such edge in cluster edge order is returned, or nil if the cluster
// is acyclic.
func (c *Cluster) FindCycleEdge() *Edge {
	post := c.PostOrder()
	for _, e := range c.Edges {
		if post[e.From] <= post[e.To] {
			return e
		}
	}
	return nil
}

// PostOrder numbers the cluster's vertices in DFS post-order along
// out-edges, starting a new search from each unnumbered vertex in cluster
// order. Numbers start at 1.
func (c *Cluster) PostOrder() map[*Vertex]int {
	post := make(map[*Vertex]int, len(c.Vertices))
	seen := make(map[*Vertex]bool, len(c.Vertices))
	n := 0

	type frame struct {
		v    *Vertex
		next []*Edge
	}
	for _, root := range c.Vertices {
		if seen[root] {
			continue
		}
		seen[root] = true
		stack := []frame{{v: root, next: root.Out.Edges()}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				n++
				post[top.v] = n
				stack = stack[:len(stack)-1]
				continue
			}
			w := top.next[0].To
			top.next = top.next[1:]
			if !seen[w] {
				seen[w] = true
				stack = append(stack, frame{v: w, next: w.Out.Edges()})
			}
		}
	}
	return post
}
