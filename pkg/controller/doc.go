// Package controller contains HTTP middlewares and helper handlers used by the
// contract docs server.
//
// Middlewares:
//   - WithCORS: permissive CORS headers, OPTIONS preflight short-circuit.
//   - WithLogger: request ID propagation and structured access log.
//   - WithMetrics: otel request counter and latency histogram.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers under a path prefix.
package controller
