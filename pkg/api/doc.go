// Package api serves the solver over HTTP.
//
// # Endpoints
//
//	GET  /healthz          liveness and build version
//	GET  /v1/algorithms    algorithms per problem kind
//	POST /v1/solve         solve a [solver.Request]
//
// POST /v1/solve answers with a [solver.Result] as JSON. With ?format=dot or
// ?format=svg it instead returns the search tree as a Graphviz diagram
// (?max_nodes bounds its size).
//
// Errors use a small JSON envelope:
//
//	{"code": "INVALID_STATE", "message": "tile 9 out of range 0..8"}
//
// Validation failures map to 400, an exhausted time budget to 504 and
// everything else to 500.
package api
