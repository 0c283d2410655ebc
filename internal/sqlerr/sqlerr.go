// Package sqlerr classifies low-level PostgreSQL driver errors.
//
// It separates "store unreachable" from "query execution failed" so
// logs carry a useful category, and collapses every store failure into
// a generic 500 at the HTTP boundary. No driver detail ever reaches a
// client.
package sqlerr
