// Package http dispatches resolved requests and wraps responses for
// assertions.
//
// It is a thin layer over the standard library client:
//   - Configurable timeouts, redirects, TLS validation and proxying
//   - Default headers shared across requests
//   - Optional rate limiting and latency recording
//   - A synchronous Do contract: the call blocks until the response or a
//     transport fault arrives
package http
