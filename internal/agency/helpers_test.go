package agency

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/recruitdb/internal/kv"
	"github.com/roach88/recruitdb/internal/testutil"
)

var testNow = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

// openData boots a Data over durable with a frozen clock and sequential ids.
func openData(t *testing.T, durable kv.Store) *Data {
	t.Helper()
	d, err := Open(context.Background(), Options{
		KV:     durable,
		IDs:    testutil.NewSequentialIDs("rec"),
		Clock:  testutil.NewFrozenClock(testNow),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

// withoutVersion strips the version so snapshots from different processes
// compare by content.
func withoutVersion(s *Snapshot) *Snapshot {
	c := s.Clone()
	c.Version = 0
	return c
}

func rawSnapshot(t *testing.T, d *Data) string {
	t.Helper()
	raw, ok, err := d.Export(context.Background())
	require.NoError(t, err)
	require.True(t, ok, "durable snapshot should exist")
	return raw
}
