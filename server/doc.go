// Package server exposes the solver over HTTP.
//
// Routes (all under a per-client-IP rate limiter):
//
//	POST /api/token              client id + secret → bearer token
//	POST /api/solve              one solve, JSON result
//	POST /api/sweep              (α, Mach) sweep, optionally stored
//	GET  /api/sweeps             stored sweep summaries
//	GET  /api/sweeps/{id}        one stored sweep
//	GET  /api/sweeps/{id}/xlsx   stored sweep as a workbook
//	POST /api/report/pdf         solve report
//	GET  /ws/sweep               sweep with streamed progress
//
// Everything except /api/token requires "Authorization: Bearer <token>";
// the websocket route also accepts the token as ?access_token=.
// Angles in request and response bodies are in degrees.
package server
