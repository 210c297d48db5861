package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Row is one record keyed by column name. Values use JSON shapes: string,
// float64/int64/json.Number, bool, nil, []any and map[string]any.
type Row map[string]any

// ID returns the row's id, or "" if it has none.
func (r Row) ID() string {
	id, _ := r[IDColumn].(string)
	return id
}

// RowFrom converts a record into a Row through its JSON encoding.
func RowFrom(v any) (Row, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var row Row
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return row, nil
}

// Decode fills out (a pointer to a record) from the row.
func (r Row) Decode(out any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode row %q: %w", r.ID(), err)
	}
	return nil
}

// encode converts a row into the column list and SQL parameters for an
// insert. Keys that are not declared columns are dropped; declared columns
// absent from the row are stored as NULL.
func (t TableDef) encode(row Row) ([]string, []any, error) {
	id := row.ID()
	if id == "" {
		return nil, nil, fmt.Errorf("%s: %w", t.Name, ErrMissingID)
	}

	cols := make([]string, 0, len(t.Columns)+1)
	vals := make([]any, 0, len(t.Columns)+1)
	cols = append(cols, quoteIdent(IDColumn))
	vals = append(vals, id)

	for _, c := range t.Columns {
		v, err := encodeValue(c.Kind, row[c.Name])
		if err != nil {
			return nil, nil, fmt.Errorf("%s.%s: %w", t.Name, c.Name, err)
		}
		cols = append(cols, quoteIdent(c.Name))
		vals = append(vals, v)
	}
	return cols, vals, nil
}

func encodeValue(kind Kind, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch kind {
	case KindText:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("want string, got %T", v)
		}
		return s, nil

	case KindInteger:
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("want integer, got %v", n)
			}
			return int64(n), nil
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return nil, fmt.Errorf("want integer, got %s", n)
			}
			return i, nil
		}
		return nil, fmt.Errorf("want integer, got %T", v)

	case KindReal:
		switch n := v.(type) {
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case float64:
			return n, nil
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("want number, got %s", n)
			}
			return f, nil
		}
		return nil, fmt.Errorf("want number, got %T", v)

	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("want bool, got %T", v)
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil

	case KindJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return string(data), nil
	}

	return nil, fmt.Errorf("unknown column kind %d", kind)
}

// decodeValue converts a scanned SQLite value back into its JSON shape.
func decodeValue(kind Kind, v any) (any, error) {
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	if v == nil {
		return nil, nil
	}

	switch kind {
	case KindBool:
		switch b := v.(type) {
		case bool:
			return b, nil
		case int64:
			return b != 0, nil
		}
		return nil, fmt.Errorf("want bool, got %T", v)

	case KindJSON:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("want json text, got %T", v)
		}
		var out any
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return out, nil

	case KindReal:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		}
		return nil, fmt.Errorf("want real, got %T", v)

	case KindInteger:
		switch n := v.(type) {
		case int64:
			return n, nil
		case float64:
			return int64(n), nil
		}
		return nil, fmt.Errorf("want integer, got %T", v)

	default:
		switch s := v.(type) {
		case string:
			return s, nil
		case int64:
			return strconv.FormatInt(s, 10), nil
		}
		return nil, fmt.Errorf("want text, got %T", v)
	}
}

// decodeRow builds a Row from values scanned in ColumnNames order.
func (t TableDef) decodeRow(raw []any) (Row, error) {
	row := make(Row, len(raw))

	id, err := decodeValue(KindText, raw[0])
	if err != nil || id == nil {
		return nil, fmt.Errorf("%s: %w", t.Name, ErrMissingID)
	}
	row[IDColumn] = id

	for i, c := range t.Columns {
		v, err := decodeValue(c.Kind, raw[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s.%s of %q: %w", t.Name, c.Name, id, err)
		}
		row[c.Name] = v
	}
	return row, nil
}
