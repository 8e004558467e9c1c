// Package store persists enumeration runs in SQLite.
//
// A run is one call to enumerate.Enumerate: its length bound, sign mode and
// every (word, Jones) record in output order. Words and polynomials are
// stored in their String forms and read back with braid.ParseWord and
// poly.Parse; the t⁰ coefficient is kept in its own column so runs can be
// queried for the words whose Jones polynomial has a constant term.
//
// The database is opened with WAL journaling, NORMAL synchronous mode, a
// busy timeout and foreign keys on. Schema creation is idempotent.
package store
