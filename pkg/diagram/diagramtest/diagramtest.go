// Package diagramtest builds small in-memory diagrams for tests.
package diagramtest

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/geom"
)

// NodeSize is the width and height of nodes created by Parse.
const NodeSize = 20

// Parse builds a diagram from a compact description such as
// "r>a r>b a>c d". Each "x>y" token adds a link x→y, creating missing nodes;
// a bare token adds an isolated node. Tokens are separated by spaces or
// commas. Nodes are created in first-mention order on a row, 30 apart.
func Parse(tb testing.TB, desc string) *diagram.Memory {
	tb.Helper()
	m := diagram.NewMemory()
	ensure := func(id string) {
		if m.Node(id) != nil {
			return
		}
		x := float64(len(m.NodeList())) * 30
		if _, err := m.AddNode(id, geom.Rect{X: x, W: NodeSize, H: NodeSize}); err != nil {
			tb.Fatalf("AddNode(%q) error = %v", id, err)
		}
	}
	fields := strings.FieldsFunc(desc, func(r rune) bool { return r == ' ' || r == ',' || r == '\n' || r == '\t' })
	for _, tok := range fields {
		from, to, ok := strings.Cut(tok, ">")
		if !ok {
			ensure(tok)
			continue
		}
		ensure(from)
		ensure(to)
		if _, err := m.AddLink("", from, to); err != nil {
			tb.Fatalf("AddLink(%q) error = %v", tok, err)
		}
	}
	return m
}

// Center returns the center of the node with the given ID.
func Center(tb testing.TB, m *diagram.Memory, id string) geom.Point {
	tb.Helper()
	n := m.Node(id)
	if n == nil {
		tb.Fatalf("no node %q", id)
	}
	return n.Bounds().Center()
}

// Positions returns the top-left corner of every node keyed by ID.
func Positions(m *diagram.Memory) map[string]geom.Point {
	out := make(map[string]geom.Point, len(m.NodeList()))
	for _, n := range m.NodeList() {
		r := n.Bounds()
		out[n.ID()] = geom.Pt(r.X, r.Y)
	}
	return out
}

// AssertNonNegative fails if any node or link point has a negative or
// non-finite coordinate.
func AssertNonNegative(tb testing.TB, m *diagram.Memory) {
	tb.Helper()
	const eps = 1e-6
	check := func(what string, p geom.Point) {
		if !geom.Finite(p) || p.X < -eps || p.Y < -eps {
			tb.Errorf("%s at %v, want finite non-negative", what, p)
		}
	}
	for _, n := range m.NodeList() {
		r := n.Bounds()
		check("node "+n.ID(), geom.Pt(r.X, r.Y))
	}
	for _, l := range m.LinkList() {
		for _, p := range l.Points() {
			check("link "+l.ID(), p)
		}
	}
}
