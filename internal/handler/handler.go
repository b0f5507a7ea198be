// Package handler is the HTTP layer. Handlers bind and validate
// request payloads, call into the service layer, and let the global
// error handler shape failures into the JSON error envelope.
package handler
