package agency

import (
	"context"
	"fmt"
	"reflect"

	"github.com/roach88/recruitdb/internal/model"
	"github.com/roach88/recruitdb/internal/store"
)

// Table is the typed view of one relational table. Reads come from the
// current snapshot; writes go through the gateway.
type Table[T model.Record] struct {
	name string
	data *Data
	pick func(*Snapshot) *[]T
}

func bindTable[T model.Record](d *Data, name string, pick func(*Snapshot) *[]T) *Table[T] {
	t := &Table[T]{name: name, data: d, pick: pick}
	d.projector.register(t)
	d.bindings = append(d.bindings, t)
	return t
}

// Name returns the table name.
func (t *Table[T]) Name() string { return t.name }

func (t *Table[T]) tableName() string { return t.name }

// List returns a copy of the projected rows, ordered by id.
func (t *Table[T]) List() []T {
	return cloneSlice(*t.pick(t.data.projector.Current()))
}

// Len returns the number of projected rows.
func (t *Table[T]) Len() int {
	return len(*t.pick(t.data.projector.Current()))
}

// Get returns the projected row with the given id.
func (t *Table[T]) Get(id string) (T, bool) {
	for _, rec := range *t.pick(t.data.projector.Current()) {
		if rec.RecordID() == id {
			return cloneRecord(rec), true
		}
	}
	var zero T
	return zero, false
}

// Add fills defaults, assigns an id if rec has none and inserts the row.
// It fails with ErrStatement if the id is already taken.
func (t *Table[T]) Add(ctx context.Context, rec T) (T, error) {
	var zero T
	row, err := t.normalize(rec)
	if err != nil {
		return zero, err
	}
	if row.ID() == "" {
		row[store.IDColumn] = t.data.ids.Generate()
	}

	var out T
	if err := row.Decode(&out); err != nil {
		return zero, err
	}

	err = t.data.gateway.Mutate(ctx, "add "+t.name, func(ctx context.Context, q store.Querier) error {
		stmt, err := store.Insert(t.name, row)
		if err != nil {
			return err
		}
		_, err = store.Exec(ctx, q, stmt)
		return err
	})
	if err != nil {
		return zero, err
	}
	return out, nil
}

// Update replaces the row with rec's id in one statement. A row that does
// not exist yet is inserted.
func (t *Table[T]) Update(ctx context.Context, rec T) error {
	row, err := store.RowFrom(rec)
	if err != nil {
		return err
	}
	return t.data.gateway.Mutate(ctx, "update "+t.name, func(ctx context.Context, q store.Querier) error {
		stmt, err := store.Upsert(t.name, row)
		if err != nil {
			return err
		}
		_, err = store.Exec(ctx, q, stmt)
		return err
	})
}

// Delete removes the row with the given id. Deleting a missing id is not
// an error.
func (t *Table[T]) Delete(ctx context.Context, id string) error {
	return t.data.gateway.Mutate(ctx, "delete "+t.name, func(ctx context.Context, q store.Querier) error {
		stmt, err := store.DeleteByID(t.name, id)
		if err != nil {
			return err
		}
		_, err = store.Exec(ctx, q, stmt)
		return err
	})
}

// modify loads the row with the given id, applies fn and writes back only
// the fields fn changed, as one mutation.
func (t *Table[T]) modify(ctx context.Context, op, id string, fn func(*T)) error {
	return t.data.gateway.Mutate(ctx, op, func(ctx context.Context, q store.Querier) error {
		_, err := t.modifyIn(ctx, q, id, fn)
		return err
	})
}

// modifyIn is modify inside an open mutation. It returns the updated
// record.
func (t *Table[T]) modifyIn(ctx context.Context, q store.Querier, id string, fn func(*T)) (T, error) {
	var rec T
	stored, found, err := store.SelectByID(ctx, q, t.name, id)
	if err != nil {
		return rec, err
	}
	if !found {
		return rec, fmt.Errorf("%s %q: %w", t.name, id, ErrNotFound)
	}
	if err := stored.Decode(&rec); err != nil {
		return rec, err
	}

	before, err := store.RowFrom(rec)
	if err != nil {
		return rec, err
	}
	fn(&rec)
	after, err := store.RowFrom(rec)
	if err != nil {
		return rec, err
	}

	stmt, err := store.Upsert(t.name, patch(stored, before, after))
	if err != nil {
		return rec, err
	}
	_, err = store.Exec(ctx, q, stmt)
	return rec, err
}

// patch applies the difference between before and after to stored, so
// columns fn did not touch keep their stored value, NULLs included.
func patch(stored, before, after store.Row) store.Row {
	out := make(store.Row, len(stored))
	for k, v := range stored {
		out[k] = v
	}
	for k, v := range after {
		if !reflect.DeepEqual(before[k], v) {
			out[k] = v
		}
	}
	for k := range before {
		if _, ok := after[k]; !ok {
			out[k] = nil
		}
	}
	return out
}

// normalize applies record defaults and converts rec to a row.
func (t *Table[T]) normalize(rec T) (store.Row, error) {
	if d, ok := any(&rec).(model.Defaulter); ok {
		d.ApplyDefaults(t.data.clock.Now())
	}
	return store.RowFrom(rec)
}

// normalizeRow applies record defaults to a raw row, as done for seed rows.
func (t *Table[T]) normalizeRow(row store.Row) (store.Row, error) {
	var rec T
	if err := row.Decode(&rec); err != nil {
		return nil, err
	}
	return t.normalize(rec)
}

func (t *Table[T]) project(ctx context.Context, q store.Querier, into *Snapshot) error {
	dst := t.pick(into)
	*dst = []T{}

	rows, err := store.SelectAll(ctx, q, t.name)
	if err != nil {
		return err
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		var rec T
		if err := row.Decode(&rec); err != nil {
			return err
		}
		out = append(out, rec)
	}
	*dst = out
	return nil
}

// Records returns the projected rows as untyped values.
func (t *Table[T]) Records() []any {
	rows := t.List()
	out := make([]any, len(rows))
	for i, rec := range rows {
		out[i] = rec
	}
	return out
}
