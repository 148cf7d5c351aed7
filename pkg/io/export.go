package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphlayout/pkg/diagram"
)

// WriteJSON encodes the diagram as an indented JSON document and writes
// it to w. The output can be re-imported with [ReadJSON].
func WriteJSON(m *diagram.Memory, w io.Writer) error {
	doc := m.Document()
	if doc.Nodes == nil {
		doc.Nodes = []diagram.NodeData{}
	}
	if doc.Links == nil {
		doc.Links = []diagram.LinkData{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the diagram to a JSON file at path.
func ExportJSON(m *diagram.Memory, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(m, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
