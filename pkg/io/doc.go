// Package io reads and writes diagrams as JSON documents.
//
// # JSON Format
//
// A document has a "nodes" array and a "links" array:
//
//	{
//	  "nodes": [
//	    {"id": "app", "x": 0, "y": 0, "w": 40, "h": 20},
//	    {"id": "lib", "w": 40, "h": 20, "lock_x": true}
//	  ],
//	  "links": [
//	    {"from": "app", "to": "lib"}
//	  ]
//	}
//
// # Node Fields
//
// Required:
//   - id: unique string identifier
//
// Optional:
//   - x, y: top-left corner (default 0)
//   - w, h: size; a node without a size gets [DefaultNodeWidth] by
//     [DefaultNodeHeight]
//   - lock_x, lock_y: the node may not move along that axis (honoured by
//     engines that support axis locks)
//   - excluded: the node and its links are ignored by layout
//
// # Link Fields
//
// Required:
//   - from, to: node IDs
//
// Optional:
//   - id: unique identifier, "from->to" when omitted
//   - points: polyline from origin to destination
//   - excluded: ignored by layout
//   - pinned: keeps its points, which are only translated with its origin
//
// Layout writes polyline, adjustable_origin and adjustable_destination.
//
// # Edge Lists
//
// For compatibility with plain graph files, an "edges" array with the same
// fields is accepted in place of "links".
//
// # Round-Trip
//
// [WriteJSON] emits every field needed to read the document back with
// [ReadJSON], so a laid-out document can be fed into another layout run.
package io
