// Package errs defines the error types returned to API clients.
//
// Every failed request, no matter where it failed, ends up serialized
// from an HTTPError so clients always receive the same JSON envelope
// with an "error" message.
package errs
