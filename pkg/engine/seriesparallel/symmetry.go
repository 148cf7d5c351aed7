package seriesparallel

import (
	"fmt"
	"slices"
	"strings"
)

// Symmetrize labels every node of the tree with its symmetry class and
// reorders the children of P nodes so equal classes mirror each other.
func Symmetrize(root *Node) {
	labels := map[string]int{"Q": 0}
	var label func(n *Node) int
	label = func(n *Node) int {
		if n.Kind == Q {
			n.Label = 0
			return 0
		}
		keys := make([]int, len(n.Children))
		for i, c := range n.Children {
			keys[i] = label(c)
		}
		if n.Kind == P {
			slices.Sort(keys)
			n.Children = mirrorOrder(n.Children)
		}
		key := n.Kind.String() + fmt.Sprint(keys)
		id, ok := labels[key]
		if !ok {
			id = len(labels)
			labels[key] = id
		}
		n.Label = id
		return id
	}
	label(root)
}

// mirrorOrder arranges nodes so that pairs with equal labels sit at mirrored
// positions, filled from the outside in. Unpaired nodes form the middle
// block, so a single odd class ends up centered.
func mirrorOrder(nodes []*Node) []*Node {
	byLabel := map[int][]*Node{}
	var order []int
	for _, n := range nodes {
		if _, ok := byLabel[n.Label]; !ok {
			order = append(order, n.Label)
		}
		byLabel[n.Label] = append(byLabel[n.Label], n)
	}
	slices.Sort(order)

	var left, right, middle []*Node
	for _, l := range order {
		class := byLabel[l]
		for len(class) >= 2 {
			left = append(left, class[0])
			right = append(right, class[1])
			class = class[2:]
		}
		middle = append(middle, class...)
	}

	out := make([]*Node, 0, len(nodes))
	out = append(out, left...)
	out = append(out, middle...)
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	return out
}

// String renders the tree as nested kinds, e.g. "P(S(Q Q) S(Q Q))".
func (n *Node) String() string {
	if n.Kind == Q {
		return "Q"
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return n.Kind.String() + "(" + strings.Join(parts, " ") + ")"
}
