// Package sqlite provides the SQLite-backed run catalog.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. The catalog
// keeps one row per converted document so a rerun can be compared to
// the previous one by fingerprint.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory. Each migration is a pair of .up.sql and
// .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.perundang/data/catalog.db
//
// # Thread Safety
//
// All operations are thread-safe. The catalog uses database-level
// locking provided by SQLite in WAL mode.
package sqlite
