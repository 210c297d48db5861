package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/recruitdb/internal/agency"
	"github.com/roach88/recruitdb/internal/config"
	"github.com/roach88/recruitdb/internal/kv"
	"github.com/roach88/recruitdb/internal/seed"
)

// workspace is the opened data layer for one command.
type workspace struct {
	cfg     *config.Config
	logger  *slog.Logger
	durable *kv.SQLiteStore
	data    *agency.Data
}

// openWorkspace loads config, opens the durable store and boots the data
// layer. Failures are command errors.
func openWorkspace(opts *RootOptions, cmd *cobra.Command) (*workspace, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.Store.Path = opts.Database
	}

	logger := NewLogger(cfg.Log, opts.Verbose, cmd.ErrOrStderr())

	var baseline *seed.Dataset
	if cfg.Seed.Path != "" {
		logger.Debug("loading seed dataset", "path", cfg.Seed.Path)
		baseline, err = seed.LoadFile(cfg.Seed.Path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load seed dataset", err)
		}
	}

	logger.Debug("opening durable store", "path", cfg.Store.Path)
	durable, err := kv.OpenSQLite(cfg.Store.Path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open store", err)
	}

	data, err := agency.Open(commandContext(cmd), agency.Options{
		KV:          durable,
		Baseline:    baseline,
		SnapshotKey: cfg.Store.SnapshotKey,
		IDs:         opts.IDs,
		Clock:       opts.Clock,
		Logger:      logger,
	})
	if err != nil {
		durable.Close()
		return nil, WrapExitError(ExitCommandError, "failed to open data", err)
	}

	return &workspace{cfg: cfg, logger: logger, durable: durable, data: data}, nil
}

func (w *workspace) Close() {
	if err := w.data.Close(); err != nil {
		w.logger.Error("error closing engine", "error", err)
	}
	if err := w.durable.Close(); err != nil {
		w.logger.Error("error closing store", "error", err)
	}
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
