// Package hotel holds the inventory domain: rooms and the guests
// staying in them. Repositories are SQLite-backed and context-scoped;
// callers distinguish a missing record from a store failure through
// the package's sentinel errors.
package hotel
