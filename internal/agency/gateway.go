package agency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	sq "github.com/Masterminds/squirrel"

	"github.com/roach88/recruitdb/internal/store"
)

var (
	// ErrStatement wraps a statement the engine rejected.
	ErrStatement = errors.New("statement failed")

	// ErrPersist wraps a failed durable write. The engine was rolled back.
	ErrPersist = errors.New("persist snapshot failed")

	// ErrNotFound is returned by transitions on a missing row.
	ErrNotFound = errors.New("record not found")

	errNoIdentity = errors.New("record has no id")
)

// MutationFunc runs statements through the transaction it is given.
type MutationFunc func(ctx context.Context, q store.Querier) error

// Gateway is the only path through which the engine changes.
//
// A mutation is: run statements, save the full snapshot durably, commit,
// re-project. Mutations are serialized.
type Gateway struct {
	mu        sync.Mutex
	engine    *store.Store
	persister *Persister
	projector *Projector
	logger    *slog.Logger
}

// NewGateway wires a gateway.
func NewGateway(engine *store.Store, persister *Persister, projector *Projector, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{engine: engine, persister: persister, projector: projector, logger: logger}
}

// Mutate runs fn and persists the result atomically.
//
// If fn or the durable write fails, the engine is rolled back, the durable
// snapshot is unchanged, the projector is not refreshed and the error is
// logged and returned. Errors from fn wrap ErrStatement unless they already
// wrap ErrNotFound. Cancelling ctx stops a mutation only before its durable
// write starts; after that it runs to commit.
func (g *Gateway) Mutate(ctx context.Context, op string, fn MutationFunc) error {
	if err := g.commit(ctx, op, fn); err != nil {
		g.logger.Error("mutation failed", "op", op, "error", err)
		return err
	}
	g.logger.Debug("mutation committed", "op", op)
	g.projector.Refresh(context.WithoutCancel(ctx))
	return nil
}

// Exec runs prebuilt statements as one mutation.
func (g *Gateway) Exec(ctx context.Context, op string, stmts ...sq.Sqlizer) error {
	return g.Mutate(ctx, op, func(ctx context.Context, q store.Querier) error {
		for _, stmt := range stmts {
			if _, err := store.Exec(ctx, q, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *Gateway) commit(ctx context.Context, op string, fn MutationFunc) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// The transaction outlives ctx: once the durable write has happened,
	// only a commit keeps the engine equal to it.
	txCtx := context.WithoutCancel(ctx)
	written := false
	err := g.engine.WithTx(txCtx, func(q store.Querier) error {
		if err := fn(ctx, q); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%s: %w", op, err)
			}
			return fmt.Errorf("%s: %w: %w", op, ErrStatement, err)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := g.persister.Save(txCtx, q); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		written = true
		return nil
	})
	if err != nil && written {
		// Commit failed after the durable write: put the durable snapshot
		// back in line with the rolled back engine.
		resync := g.engine.WithTx(txCtx, func(q store.Querier) error {
			return g.persister.Save(txCtx, q)
		})
		if resync != nil {
			g.logger.Error("durable snapshot out of sync after failed commit", "op", op, "error", resync)
		}
	}
	return err
}
