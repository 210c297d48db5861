package agency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/recruitdb/internal/kv"
	"github.com/roach88/recruitdb/internal/store"
)

// DefaultSnapshotKey is the durable key holding the serialized table set.
const DefaultSnapshotKey = "recruitdb.snapshot"

// Persister mirrors the engine's full table set into one durable key.
type Persister struct {
	kv     kv.Store
	key    string
	logger *slog.Logger
}

// NewPersister creates a persister writing under key.
func NewPersister(durable kv.Store, key string, logger *slog.Logger) *Persister {
	if key == "" {
		key = DefaultSnapshotKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{kv: durable, key: key, logger: logger}
}

// Key returns the durable key.
func (p *Persister) Key() string { return p.key }

// Save serializes every table visible through q and overwrites the durable
// snapshot. The previous snapshot is replaced only by a fully serialized
// new one. Errors wrap ErrPersist.
func (p *Persister) Save(ctx context.Context, q store.Querier) error {
	snap, err := store.Export(ctx, q)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	data, err := store.MarshalSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := p.kv.Put(ctx, p.key, string(data)); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersist, p.key, err)
	}
	return nil
}

// Load replaces the engine's contents with the durable snapshot.
//
// It never fails: a missing key, unreadable store, malformed document or a
// snapshot the engine rejects all report false ("no snapshot") and leave the
// engine untouched, so the caller can fall back to seeding.
func (p *Persister) Load(ctx context.Context, engine *store.Store) bool {
	raw, ok, err := p.kv.Get(ctx, p.key)
	if err != nil {
		p.logger.Warn("durable snapshot unreadable", "key", p.key, "error", err)
		return false
	}
	if !ok {
		p.logger.Info("no durable snapshot", "key", p.key)
		return false
	}

	snap, err := store.UnmarshalSnapshot([]byte(raw))
	if err != nil {
		p.logger.Warn("durable snapshot malformed", "key", p.key, "error", err)
		return false
	}

	err = engine.WithTx(ctx, func(q store.Querier) error {
		return store.Import(ctx, q, snap)
	})
	if err != nil {
		p.logger.Warn("durable snapshot rejected", "key", p.key, "error", err)
		return false
	}
	return true
}

// Raw returns the serialized snapshot as stored.
func (p *Persister) Raw(ctx context.Context) (string, bool, error) {
	return p.kv.Get(ctx, p.key)
}
