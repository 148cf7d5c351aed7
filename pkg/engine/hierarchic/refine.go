package hierarchic

import (
	"context"
	"math/rand/v2"

	"github.com/matzehuels/graphlayout/pkg/engine/internal/gem"
	"gonum.org/v1/gonum/spatial/r2"
)

// refine runs a GEM simulation restricted to the x axis. Rows keep their
// y, repulsion only acts between nodes of the same row and a move is
// rejected when it would bring a node closer to its left or right
// neighbour than their separation. It returns the number of rounds run.
func (h *hierarchy) refine(ctx context.Context, rng *rand.Rand) (int, error) {
	n := len(h.nodes)
	if n < 2 {
		return 0, ctx.Err()
	}
	p := gem.NewParams(h.opts.VertexDistance)
	bodies := make([]gem.Body, n)
	var sum r2.Vec
	for i, nd := range h.nodes {
		bodies[i] = p.NewBody(len(nd.up) + len(nd.down))
		sum = r2.Add(sum, h.at(nd))
	}

	update := func(i int) {
		nd := h.nodes[i]
		b := &bodies[i]
		pos := h.at(nd)
		center := r2.Scale(1/float64(n), sum)

		imp := p.Jitter(rng)
		imp = r2.Add(imp, p.Gravity(*b, pos, center))
		for _, o := range h.rows[nd.row] {
			if o != nd {
				imp = r2.Add(imp, p.Repulsion(*b, r2.Sub(pos, h.at(o))))
			}
		}
		for _, o := range nd.up {
			imp = r2.Add(imp, p.Attraction(*b, r2.Sub(pos, h.at(o))))
		}
		for _, o := range nd.down {
			imp = r2.Add(imp, p.Attraction(*b, r2.Sub(pos, h.at(o))))
		}
		imp.Y = 0

		move := p.Step(b, imp)
		x := nd.x + move.X
		row := h.rows[nd.row]
		if k := nd.pos; k > 0 && x-row[k-1].x < h.sep(row[k-1], nd) {
			return
		}
		if k := nd.pos; k+1 < len(row) && row[k+1].x-x < h.sep(nd, row[k+1]) {
			return
		}
		nd.x = x
		sum.X += move.X
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	limit := gem.Rounds(n)
	round := 0
	for round < limit {
		if err := ctx.Err(); err != nil {
			return round, err
		}
		for i := 0; i < n; i++ {
			j := i + rng.IntN(n-i)
			order[i], order[j] = order[j], order[i]
			update(order[i])
		}
		round++

		heat := 0.0
		for _, b := range bodies {
			heat += b.Heat * b.Heat
		}
		if p.Cooled(heat, n) {
			break
		}
		if h.opts.OnStep != nil && h.opts.OnStep(round) {
			break
		}
	}
	return round, nil
}

func (h *hierarchy) at(n *node) r2.Vec {
	return r2.Vec{X: n.x, Y: h.ys[n.row]}
}
