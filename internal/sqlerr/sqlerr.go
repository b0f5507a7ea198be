// Package sqlerr translates database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into user-friendly application errors (e.g. a unique violation on
// users.email becomes a 400 with "A user with this Email already exists").
package sqlerr
