// Package agency is the data layer of the recruitment agency.
//
// Data is the one object handed to every consumer. It composes:
//
//   - a relational engine (store.Store) holding one table per entity
//   - a Gateway, the only path through which the engine changes
//   - a Persister that mirrors the full table set into a durable kv.Store
//   - a Projector that publishes typed, immutable snapshots of every table
//   - the session slots of package session
//
// Every write runs its statements, serializes the resulting table set and
// writes it durably inside one engine transaction. The transaction commits
// only after the durable write succeeded, so the engine and the durable
// snapshot never diverge. The projector is refreshed afterwards and notifies
// subscribers once per refresh.
package agency
