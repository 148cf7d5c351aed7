package orthogonal

import (
	"slices"

	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/matzehuels/graphlayout/pkg/graph"
)

// column is a node of the ordered column list. Columns get their final
// index only after every vertex has been placed.
type column struct {
	prev, next *column
	index      int
}

type columns struct {
	head, tail *column
	count      int
}

func (l *columns) pushBack() *column {
	c := &column{prev: l.tail}
	if l.tail != nil {
		l.tail.next = c
	} else {
		l.head = c
	}
	l.tail = c
	l.count++
	return c
}

func (l *columns) insertBefore(at *column) *column {
	c := &column{prev: at.prev, next: at}
	if at.prev != nil {
		at.prev.next = c
	} else {
		l.head = c
	}
	at.prev = c
	l.count++
	return c
}

func (l *columns) insertAfter(at *column) *column {
	c := &column{prev: at, next: at.next}
	if at.next != nil {
		at.next.prev = c
	} else {
		l.tail = c
	}
	at.next = c
	l.count++
	return c
}

// number assigns consecutive indices left to right.
func (l *columns) number() {
	i := 0
	for c := l.head; c != nil; c = c.next {
		c.index = i
		i++
	}
}

// port records where an edge meets a vertex off the vertex's own column.
type port struct {
	side   bool    // true when the edge attaches to the side of the vertex
	offset float64 // vertical offset from the vertex center
}

type embedding struct {
	cols  columns
	vcol  map[*graph.Vertex]*column
	ecol  map[*graph.Edge]*column
	out   map[*graph.Edge]port
	in    map[*graph.Edge]port
	rank  map[*graph.Vertex]int
	halfH float64
}

// embed places the vertices of c on the grid in the given st-order and
// routes every edge. It returns the number of bends and columns used.
func embed(c *graph.Cluster, order []*graph.Vertex, opts Options, o engine.Orientation) (bends, ncols int) {
	gw, gh := opts.GridWidth, opts.GridHeight
	lw, lh := gw*opts.NodeRatio/100, gh*opts.NodeRatio/100

	em := &embedding{
		vcol:  make(map[*graph.Vertex]*column, len(order)),
		ecol:  make(map[*graph.Edge]*column, len(c.Edges)),
		out:   make(map[*graph.Edge]port),
		in:    make(map[*graph.Edge]port),
		rank:  make(map[*graph.Vertex]int, len(order)),
		halfH: lh / 2,
	}
	for i, v := range order {
		em.rank[v] = i
	}

	ins := make(map[*graph.Vertex][]*graph.Edge)
	outs := make(map[*graph.Vertex][]*graph.Edge)
	for _, e := range c.Edges {
		from, to := e.From, e.To
		if em.rank[from] > em.rank[to] {
			from, to = to, from
		}
		outs[from] = append(outs[from], e)
		ins[to] = append(ins[to], e)
	}
	lower := func(e *graph.Edge) *graph.Vertex {
		if em.rank[e.From] < em.rank[e.To] {
			return e.From
		}
		return e.To
	}
	upper := func(e *graph.Edge) *graph.Vertex {
		if l := lower(e); l == e.From {
			return e.To
		}
		return e.From
	}

	for i, v := range order {
		em.placeVertex(v, ins[v])

		out := outs[v]
		slices.SortStableFunc(out, func(a, b *graph.Edge) int {
			return em.rank[upper(a)] - em.rank[upper(b)]
		})
		central := (len(out) - 1) / 2
		if i == 0 && len(order) > 1 {
			for k, e := range out {
				if upper(e) == order[1] {
					central = k
					break
				}
			}
		}
		em.allocate(v, out, central)
	}
	em.cols.number()

	for _, v := range c.Vertices {
		v.W, v.H = lw, lh
		if o.Transposed() {
			v.W, v.H = lh, lw
		}
		v.Pos = geom.Pt(float64(em.vcol[v].index)*gw, float64(em.rank[v])*gh)
	}

	for _, e := range c.Edges {
		u, w := lower(e), upper(e)
		x := float64(em.ecol[e].index) * gw
		var pts []geom.Point
		if p := em.out[e]; p.side {
			y := u.Pos.Y + p.offset
			pts = append(pts, geom.Pt(u.Pos.X, y), geom.Pt(x, y))
		}
		if p := em.in[e]; p.side {
			y := w.Pos.Y + p.offset
			pts = append(pts, geom.Pt(x, y), geom.Pt(w.Pos.X, y))
		}
		if u != e.From {
			slices.Reverse(pts)
		}
		e.Bends = pts
		bends += len(pts)
	}
	return bends, em.cols.count
}

// placeVertex gives v the column of its median incoming edge. The other
// incoming edges enter the sides of v; the farther their column, the lower
// they enter, so their horizontal segments do not cross.
func (em *embedding) placeVertex(v *graph.Vertex, in []*graph.Edge) {
	if len(in) == 0 {
		em.vcol[v] = em.cols.pushBack()
		return
	}
	pos := make(map[*column]int, em.cols.count)
	i := 0
	for c := em.cols.head; c != nil; c = c.next {
		pos[c] = i
		i++
	}
	slices.SortStableFunc(in, func(a, b *graph.Edge) int {
		return pos[em.ecol[a]] - pos[em.ecol[b]]
	})

	mid := (len(in) - 1) / 2
	em.vcol[v] = em.ecol[in[mid]]

	left, right := in[:mid], in[mid+1:]
	for k, e := range left {
		em.in[e] = port{side: true, offset: -float64(k+1) * em.halfH / float64(len(left)+1)}
	}
	for k, e := range right {
		em.in[e] = port{side: true, offset: -float64(len(right)-k) * em.halfH / float64(len(right)+1)}
	}
}

// allocate assigns columns to the outgoing edges of v. The central edge
// continues on v's column; the edges before it get new columns to the left
// and the edges after it new columns to the right, in order. Side edges
// leave lower the closer their column is to v.
func (em *embedding) allocate(v *graph.Vertex, out []*graph.Edge, central int) {
	if len(out) == 0 {
		return
	}
	vc := em.vcol[v]
	em.ecol[out[central]] = vc

	left := out[:central]
	for k, e := range left {
		em.ecol[e] = em.cols.insertBefore(vc)
		em.out[e] = port{side: true, offset: float64(k+1) * em.halfH / float64(len(left)+1)}
	}
	right := out[central+1:]
	for k := len(right) - 1; k >= 0; k-- {
		e := right[k]
		em.ecol[e] = em.cols.insertAfter(vc)
		em.out[e] = port{side: true, offset: float64(len(right)-k) * em.halfH / float64(len(right)+1)}
	}
}
