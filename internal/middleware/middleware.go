// Package middleware contains the HTTP middleware stack: CORS, request
// logging, panic recovery, request IDs, request-scoped loggers, client
// identity extraction, tracing, and the global error handler that
// funnels every failure into the uniform error envelope.
package middleware
