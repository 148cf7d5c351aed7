// Package httputil writes JSON responses and maps layout errors to HTTP
// status codes.
//
// # Responses
//
// [WriteJSON] encodes a value with the given status. [WriteError] encodes
// an error envelope:
//
//	{"error": {"code": "NOT_A_ROOTED_FOREST", "message": "...", "cluster": 2}}
//
// # Status Mapping
//
// [StatusOf] derives the status from the error code recorded by package
// errors:
//
//   - INVALID_INPUT, INVALID_CONFIG, INVALID_FORMAT: 400 Bad Request
//   - UNKNOWN_ENGINE: 404 Not Found
//   - NOT_A_ROOTED_FOREST, NOT_ACYCLIC_DIGRAPH, NOT_SERIES_PARALLEL:
//     422 Unprocessable Entity, the graph is well-formed but the engine
//     cannot draw it
//   - anything else: 500 Internal Server Error
package httputil
