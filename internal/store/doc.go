// Package store is the relational engine behind the recruitment agency data.
//
// It wraps an in-memory SQLite database holding a fixed, closed set of
// entity tables and offers:
//   - Schema registry: every table is declared once with a fixed column list
//     (EnsureSchema is idempotent)
//   - Row codec: rows cross the package boundary as Row maps keyed by the
//     JSON field names of internal/model
//   - Statement helpers: squirrel builders for insert, upsert, delete and
//     select-by-id against a registered table
//   - Snapshots: the whole table set exported as one canonical JSON document
//     and imported back wholesale
//
// # Column kinds
//
//   - text:    TEXT, timestamps are RFC 3339 strings
//   - integer: INTEGER
//   - real:    REAL
//   - bool:    INTEGER 0/1, surfaced as a JSON boolean
//   - json:    TEXT holding a JSON document, surfaced as the decoded value
//
// # Database configuration
//
//   - One connection: an in-memory database lives and dies with its
//     connection, and SQLite allows a single writer anyway
//   - foreign_keys=OFF: cross-table references are soft and may dangle
//
// Reads are ordered by id COLLATE BINARY so exports and projections are
// deterministic.
package store
