package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrIncompleteSnapshot is returned when a snapshot lacks a registered table.
var ErrIncompleteSnapshot = errors.New("snapshot is missing tables")

// Snapshot is the full contents of every table, keyed by table name.
type Snapshot map[string][]Row

// Export reads every registered table.
func Export(ctx context.Context, q Querier) (Snapshot, error) {
	snap := make(Snapshot, len(registry))
	for _, t := range registry {
		rows, err := SelectAll(ctx, q, t.Name)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		snap[t.Name] = rows
	}
	return snap, nil
}

// Import replaces the contents of every registered table with the rows in
// snap. Every registered table must be present in snap; unknown tables are
// ignored. Run it inside WithTx so a bad row leaves the engine untouched.
func Import(ctx context.Context, q Querier, snap Snapshot) error {
	for _, t := range registry {
		if _, ok := snap[t.Name]; !ok {
			return fmt.Errorf("import: %w: %s", ErrIncompleteSnapshot, t.Name)
		}
	}

	if err := Clear(ctx, q, TableNames()...); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	for _, t := range registry {
		for i, row := range snap[t.Name] {
			stmt, err := Insert(t.Name, row)
			if err != nil {
				return fmt.Errorf("import %s[%d]: %w", t.Name, i, err)
			}
			if _, err := Exec(ctx, q, stmt); err != nil {
				return fmt.Errorf("import %s[%d]: %w", t.Name, i, err)
			}
		}
	}
	return nil
}

// Clear deletes every row of the named tables.
func Clear(ctx context.Context, q Querier, tables ...string) error {
	for _, name := range tables {
		stmt, err := DeleteAll(name)
		if err != nil {
			return err
		}
		if _, err := Exec(ctx, q, stmt); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

// MarshalSnapshot serializes a snapshot to canonical JSON.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	data, err := MarshalCanonical(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot parses a serialized snapshot. Numbers are kept as
// json.Number so integers survive untouched.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("unmarshal snapshot: empty document")
	}
	return snap, nil
}
