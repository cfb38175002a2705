// Package catalog persists the book catalog, shelves, and per-shelf
// attribute values in SQLite.
//
// The Store owns the database connection and every table: books, shelves,
// shelf_books (memberships), shelf_attributes (per-shelf schema), and
// shelf_book_attribute (sparse attribute values). Records are addressed by
// unambiguous identifier prefix; resolution returns ErrNotFound or
// ErrAmbiguous when a prefix matches zero or several rows. Mutations that
// touch more than one table run inside a single transaction so a crash never
// leaves attribute values pointing at a deleted membership.
//
// Treat this package as the single source of truth for catalog semantics;
// schema changes go in schema.sql, which must stay idempotent.
package catalog
