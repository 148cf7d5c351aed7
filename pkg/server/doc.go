// Package server exposes layout over HTTP.
//
// # Endpoints
//
//	GET  /healthz                liveness and build version
//	GET  /v1/engines             available engines
//	POST /v1/layout/{engine}     lay out the document in the request body
//
// The layout endpoint accepts a diagram document (see package io) and
// these query parameters:
//
//   - seed: random seed, overriding the server config
//   - orientation: N, E, S or W for the layered engines
//   - format: json (default), svg, dot or png
//
// With format=json the response carries the laid-out document, the engine
// stats and whether the result came from the cache. Other formats return
// the rendered artifact with a matching Content-Type.
//
// Every response carries an X-Request-ID header. A request ID sent by the
// client is echoed back, otherwise a UUID is generated.
//
// Errors use the envelope of package httputil; a graph an engine cannot
// draw yields 422 with the code and cluster of the failure.
package server
