package diagram

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/matzehuels/graphlayout/pkg/geom"
)

func TestMemoryItemsOrder(t *testing.T) {
	m := NewMemory()
	mustNode(t, m, "a")
	mustNode(t, m, "b")
	if _, err := m.AddLink("", "a", "b"); err != nil {
		t.Fatalf("AddLink() error = %v", err)
	}
	mustNode(t, m, "c")

	var ids []string
	for _, it := range m.Items() {
		ids = append(ids, it.ID())
	}
	want := []string{"a", "b", "c", "a->b"}
	if len(ids) != len(want) {
		t.Fatalf("Items() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Items()[%d] = %v, want %v", i, ids[i], want[i])
		}
	}
	if got := len(Nodes(m)); got != 3 {
		t.Errorf("Nodes() len = %d, want 3", got)
	}
	if got := len(Links(m)); got != 1 {
		t.Errorf("Links() len = %d, want 1", got)
	}
}

func TestMemoryAddErrors(t *testing.T) {
	m := NewMemory()
	mustNode(t, m, "a")
	if _, err := m.AddNode("a", geom.Rect{}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("AddNode(dup) error = %v, want ErrDuplicateID", err)
	}
	if _, err := m.AddLink("l", "a", "zz"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("AddLink(unknown) error = %v, want ErrUnknownNode", err)
	}
	first, _ := m.AddLink("", "a", "a")
	second, _ := m.AddLink("", "a", "a")
	if first.ID() == second.ID() {
		t.Errorf("generated link IDs collide: %q", first.ID())
	}
}

func TestMemoryUpdateBrackets(t *testing.T) {
	m := NewMemory()
	m.BeginUpdate()
	m.BeginUpdate()
	m.EndUpdate()
	if m.Commits() != 0 || !m.InUpdate() {
		t.Errorf("nested EndUpdate committed early: commits=%d", m.Commits())
	}
	m.EndUpdate()
	if m.Commits() != 1 {
		t.Errorf("Commits() = %d, want 1", m.Commits())
	}
	m.EndUpdate()
	if !errors.Is(m.Err(), ErrUnbalancedUpdate) {
		t.Errorf("Err() = %v, want ErrUnbalancedUpdate", m.Err())
	}
}

func TestMemoryLinkPoints(t *testing.T) {
	m := NewMemory()
	mustNode(t, m, "a")
	mustNode(t, m, "b")
	l, _ := m.AddLink("ab", "a", "b")

	l.SetPolyline()
	l.AddPoint(geom.Pt(1, 1))
	l.AddPoint(geom.Pt(2, 2))
	l.SetPoint(1, geom.Pt(3, 3))
	l.SetPoint(5, geom.Pt(4, 4))

	pts := l.Points()
	if len(pts) != 3 || pts[1] != geom.Pt(3, 3) || pts[2] != geom.Pt(4, 4) {
		t.Errorf("Points() = %v", pts)
	}
	l.ClearPoints()
	if len(l.Points()) != 0 {
		t.Errorf("ClearPoints() left %v", l.Points())
	}
}

func TestMemoryJSONRoundTrip(t *testing.T) {
	m := NewMemory()
	a := mustNode(t, m, "a")
	a.SetLocked(true, false)
	mustNode(t, m, "b")
	l, _ := m.AddLink("ab", "a", "b")
	l.AddPoint(geom.Pt(10, 20))
	l.SetPinned(true)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back Memory
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if x, _ := back.Node("a").Movable(); x {
		t.Error("lock_x lost in round trip")
	}
	bl := back.Link("ab")
	if bl == nil || !bl.Pinned() || len(bl.Points()) != 1 {
		t.Fatalf("link lost in round trip: %+v", bl)
	}
	if bl.Origin().ID() != "a" || bl.Destination().ID() != "b" {
		t.Errorf("endpoints = %s->%s, want a->b", bl.Origin().ID(), bl.Destination().ID())
	}
}

func TestMemoryUnmarshalUnknownNode(t *testing.T) {
	var m Memory
	err := json.Unmarshal([]byte(`{"nodes":[{"id":"a"}],"links":[{"from":"a","to":"b"}]}`), &m)
	if !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Unmarshal() error = %v, want ErrUnknownNode", err)
	}
}

func TestMemoryClone(t *testing.T) {
	m := NewMemory()
	mustNode(t, m, "a")
	c := m.Clone()
	c.Node("a").SetPosition(100, 100)
	if m.Node("a").Bounds().X != 0 {
		t.Error("Clone() shares node state with the original")
	}
}

func mustNode(t *testing.T, m *Memory, id string) *MemNode {
	t.Helper()
	n, err := m.AddNode(id, geom.Rect{W: 20, H: 20})
	if err != nil {
		t.Fatalf("AddNode(%q) error = %v", id, err)
	}
	return n
}
