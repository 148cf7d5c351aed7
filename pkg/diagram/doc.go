// Package diagram defines the adapter boundary between the layout engines
// and the host diagram they arrange.
//
// A host exposes its items through the [Diagram] interface. Each item is
// either a [Node] (a sized box with a position) or a [Link] (a connection
// between two nodes carrying an optional list of points). Engines only read
// through these interfaces while computing, and write back positions, sizes
// and link points between a single [Diagram.BeginUpdate] /
// [Diagram.EndUpdate] pair so observers see one atomic change.
//
// # Coordinates
//
// Node bounds use the top-left corner plus size. Link points are absolute
// drawing coordinates; after a layout the first and last point are the
// centers of the origin and destination nodes and any points in between are
// bends.
//
// # In-Memory Diagram
//
// [Memory] is a complete in-process implementation used by the CLI, the HTTP
// server and the tests. It serializes to the JSON document format read by
// the io package:
//
//	{
//	  "nodes": [{"id": "a", "x": 0, "y": 0, "w": 20, "h": 20}],
//	  "links": [{"id": "a-b", "from": "a", "to": "b"}]
//	}
package diagram
