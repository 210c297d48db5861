package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Kind is the storage kind of a column.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindReal
	KindBool
	KindJSON
)

func (k Kind) sqlType() string {
	switch k {
	case KindInteger, KindBool:
		return "INTEGER"
	case KindReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBool:
		return "bool"
	case KindJSON:
		return "json"
	default:
		return "text"
	}
}

// Column is one declared field of a table. Name is the JSON field name.
type Column struct {
	Name string
	Kind Kind
}

// IDColumn is the primary key every table carries.
const IDColumn = "id"

// TableDef declares one entity table. Columns excludes the id column.
type TableDef struct {
	Name    string
	Columns []Column
	// Core tables hold operational data and are cleared by a wipe. CMS
	// content is not core.
	Core bool
}

// ColumnNames returns id followed by the declared columns.
func (t TableDef) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns)+1)
	names = append(names, IDColumn)
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

func (t TableDef) column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ddl returns the idempotent CREATE TABLE statement.
func (t TableDef) ddl() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quoteIdent(t.Name))
	fmt.Fprintf(&b, "\t%s TEXT PRIMARY KEY NOT NULL", quoteIdent(IDColumn))
	for _, c := range t.Columns {
		fmt.Fprintf(&b, ",\n\t%s %s", quoteIdent(c.Name), c.Kind.sqlType())
	}
	b.WriteString("\n)")
	return b.String()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = quoteIdent(n)
	}
	return out
}

// EnsureSchema declares every registered table that does not exist yet.
// Safe to call any number of times.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, t := range registry {
		if _, err := s.db.ExecContext(ctx, t.ddl()); err != nil {
			return fmt.Errorf("declare table %s: %w", t.Name, err)
		}
	}
	return nil
}

// Tables returns the registered tables in declaration order.
func Tables() []TableDef {
	return slices.Clone(registry)
}

// TableNames returns the registered table names in declaration order.
func TableNames() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the definition of a registered table.
func Lookup(name string) (TableDef, error) {
	for _, t := range registry {
		if t.Name == name {
			return t, nil
		}
	}
	return TableDef{}, fmt.Errorf("%w: %q", ErrUnknownTable, name)
}

// CoreTables returns the tables cleared by a wipe.
func CoreTables() []string {
	var names []string
	for _, t := range registry {
		if t.Core {
			names = append(names, t.Name)
		}
	}
	return names
}
