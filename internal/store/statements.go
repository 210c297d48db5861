package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Insert builds a plain insert of row into table. It fails at execution
// time if a row with the same id already exists.
func Insert(table string, row Row) (sq.Sqlizer, error) {
	return insert(table, row, "")
}

// Upsert builds an atomic replace-by-id of row into table: the previous
// version, if any, is replaced in the same statement.
func Upsert(table string, row Row) (sq.Sqlizer, error) {
	return insert(table, row, "OR REPLACE")
}

func insert(table string, row Row, option string) (sq.Sqlizer, error) {
	t, err := Lookup(table)
	if err != nil {
		return nil, err
	}
	cols, vals, err := t.encode(row)
	if err != nil {
		return nil, err
	}

	b := sq.Insert(quoteIdent(t.Name)).Columns(cols...).Values(vals...)
	if option != "" {
		b = b.Options(option)
	}
	return b, nil
}

// DeleteByID builds a delete of one row.
func DeleteByID(table, id string) (sq.Sqlizer, error) {
	t, err := Lookup(table)
	if err != nil {
		return nil, err
	}
	return sq.Delete(quoteIdent(t.Name)).Where(sq.Eq{quoteIdent(IDColumn): id}), nil
}

// DeleteAll builds a delete of every row in table.
func DeleteAll(table string) (sq.Sqlizer, error) {
	t, err := Lookup(table)
	if err != nil {
		return nil, err
	}
	return sq.Delete(quoteIdent(t.Name)), nil
}

// Exec runs a statement and returns the number of rows it affected.
func Exec(ctx context.Context, q Querier, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec %q: %w", query, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// SelectAll returns every row of table ordered by id.
//
// Returns an empty slice (not nil) for an empty table.
func SelectAll(ctx context.Context, q Querier, table string) ([]Row, error) {
	t, err := Lookup(table)
	if err != nil {
		return nil, err
	}
	return selectRows(ctx, q, t, sq.Select(quoteAll(t.ColumnNames())...).
		From(quoteIdent(t.Name)).
		OrderBy(quoteIdent(IDColumn)+" COLLATE BINARY ASC"))
}

// SelectByID returns the row with the given id. found is false when no
// such row exists.
func SelectByID(ctx context.Context, q Querier, table, id string) (row Row, found bool, err error) {
	t, err := Lookup(table)
	if err != nil {
		return nil, false, err
	}
	rows, err := selectRows(ctx, q, t, sq.Select(quoteAll(t.ColumnNames())...).
		From(quoteIdent(t.Name)).
		Where(sq.Eq{quoteIdent(IDColumn): id}))
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

// Count returns the number of rows in table.
func Count(ctx context.Context, q Querier, table string) (int, error) {
	t, err := Lookup(table)
	if err != nil {
		return 0, err
	}
	query, args, err := sq.Select("COUNT(*)").From(quoteIdent(t.Name)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", t.Name, err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan count: %w", err)
		}
	}
	return n, rows.Err()
}

func selectRows(ctx context.Context, q Querier, t TableDef, b sq.SelectBuilder) ([]Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.Name, err)
	}
	defer rows.Close()

	out, err := scanRows(rows, t)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanRows(rows *sql.Rows, t TableDef) ([]Row, error) {
	width := len(t.Columns) + 1
	out := []Row{}
	for rows.Next() {
		raw := make([]any, width)
		ptrs := make([]any, width)
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.Name, err)
		}
		row, err := t.decodeRow(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", t.Name, err)
	}
	return out, nil
}
