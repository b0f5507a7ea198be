// Package repository handles all interactions with the database.
//
// It contains the raw SQL for each marketplace entity and methods to
// fetch, persist, or update rows, keeping SQL away from the service
// layer. All tables live in one schema whose name comes from trusted
// configuration; it is the only value ever interpolated into SQL text.
package repository
