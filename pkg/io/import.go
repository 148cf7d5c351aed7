package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphlayout/pkg/diagram"
)

// Default size of nodes that do not specify one.
const (
	DefaultNodeWidth  = 40.0
	DefaultNodeHeight = 20.0
)

// document is the accepted input form: a diagram document that may name
// its links "edges".
type document struct {
	Nodes []diagram.NodeData `json:"nodes"`
	Links []diagram.LinkData `json:"links"`
	Edges []diagram.LinkData `json:"edges"`
}

// ReadJSON decodes a JSON document from r into an in-memory diagram.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A node or link has a duplicate ID
//   - A link references an unknown node ID
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*diagram.Memory, error) {
	var in document
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	doc := diagram.Document{Nodes: in.Nodes, Links: append(in.Links, in.Edges...)}
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		if n.W == 0 && n.H == 0 {
			n.W, n.H = DefaultNodeWidth, DefaultNodeHeight
		}
	}
	m, err := diagram.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("build diagram: %w", err)
	}
	return m, nil
}

// ImportJSON reads a JSON file at path and returns the decoded diagram.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*diagram.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
