// Package middleware wires the cross-cutting request plumbing: request
// correlation, request-scoped logging, tracing, the global error
// funnel, and the bearer-token gate on data routes.
package middleware
