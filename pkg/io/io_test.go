package io

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/geom"
)

func TestReadJSON(t *testing.T) {
	in := `{
	  "nodes": [
	    {"id": "a", "x": 1, "y": 2, "w": 30, "h": 10, "lock_x": true},
	    {"id": "b"}
	  ],
	  "links": [{"from": "a", "to": "b", "pinned": true, "points": [{"x": 1, "y": 1}]}]
	}`
	m, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got := m.Node("a").Bounds(); got != (geom.Rect{X: 1, Y: 2, W: 30, H: 10}) {
		t.Errorf("a bounds = %+v", got)
	}
	if x, y := m.Node("a").Movable(); x || !y {
		t.Errorf("a Movable() = %v, %v, want false, true", x, y)
	}
	if got := m.Node("b").Bounds(); got.W != DefaultNodeWidth || got.H != DefaultNodeHeight {
		t.Errorf("b size = %vx%v, want default", got.W, got.H)
	}
	l := m.Link("a->b")
	if l == nil {
		t.Fatal("link a->b missing")
	}
	if !l.Pinned() || len(l.Points()) != 1 {
		t.Errorf("link = pinned %v, points %v", l.Pinned(), l.Points())
	}
}

func TestReadJSONEdgesAlias(t *testing.T) {
	in := `{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"from": "a", "to": "b"}]}`
	m, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if len(m.LinkList()) != 1 {
		t.Errorf("links = %d, want 1", len(m.LinkList()))
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"malformed", `{"nodes": [`, nil},
		{"duplicate node", `{"nodes": [{"id": "a"}, {"id": "a"}]}`, diagram.ErrDuplicateID},
		{"unknown node", `{"nodes": [{"id": "a"}], "links": [{"from": "a", "to": "x"}]}`, diagram.ErrUnknownNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("ReadJSON() error = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRoundTripFile(t *testing.T) {
	m := diagram.NewMemory()
	if _, err := m.AddNode("a", geom.Rect{W: 10, H: 10}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddNode("b", geom.Rect{X: 50, W: 10, H: 10}); err != nil {
		t.Fatal(err)
	}
	l, err := m.AddLink("", "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	l.SetPolyline()
	l.AddPoint(geom.Pt(5, 5))
	l.AddPoint(geom.Pt(55, 5))

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := ExportJSON(m, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}

	var want, got bytes.Buffer
	if err := WriteJSON(m, &want); err != nil {
		t.Fatal(err)
	}
	if err := WriteJSON(back, &got); err != nil {
		t.Fatal(err)
	}
	if want.String() != got.String() {
		t.Errorf("round trip changed document:\n%s\nwant:\n%s", got.String(), want.String())
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(diagram.NewMemory(), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if got := strings.Join(strings.Fields(buf.String()), ""); got != `{"nodes":[],"links":[]}` {
		t.Errorf("WriteJSON(empty) = %s", got)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ImportJSON(missing) error = nil")
	}
}
