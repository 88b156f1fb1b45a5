// Package store persists courses, SCOs, attempts, and CMI tracking values in
// SQLite.
//
// The Store manages the database connection, WAL pragmas, and embedded
// migrations tracked in a schema_migrations table. Timestamps are stored as
// RFC3339Nano UTC text. SCO rows keep a position column so the manifest's
// document order survives round trips.
package store
