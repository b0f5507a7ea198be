// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from handlers, applies marketplace rules (defaults,
// allow-lists, order numbering, credential hashing, moderation), and
// calls repositories through narrow store interfaces.
package service
