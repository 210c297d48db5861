// Package seed provides the baseline dataset loaded into an empty store.
//
// The dataset is YAML, validated against a CUE schema before use. Both are
// embedded, so the binary always carries a usable baseline; LoadFile reads
// an operator-supplied replacement in the same format.
//
// Optional fields the dataset omits are filled with fixed values (see
// Defaults), never random ones, so two seeds of the same file are
// identical.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/recruitdb/internal/store"
)

//go:embed baseline.yaml
var baselineYAML []byte

//go:embed baseline.cue
var schemaCUE string

// Defaults fills optional fields the dataset omits, per table.
var Defaults = map[string]map[string]any{
	store.TableCandidates: {
		"isVerified":        false,
		"completenessScore": 50,
	},
	store.TableClients: {
		"isVerified": false,
	},
}

// Dataset is a parsed, validated seed dataset keyed by table name. Every
// registered table is present, possibly empty.
type Dataset struct {
	Tables map[string][]store.Row
}

// Count returns the number of rows seeded into table.
func (d *Dataset) Count(table string) int {
	return len(d.Tables[table])
}

// Baseline returns the embedded dataset.
func Baseline() (*Dataset, error) {
	return Parse(baselineYAML)
}

// LoadFile reads a dataset from a YAML file.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes YAML, validates it against the schema and applies Defaults.
func Parse(data []byte) (*Dataset, error) {
	var raw map[string]any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("seed: empty document")
		}
		return nil, fmt.Errorf("seed: parse yaml: %w", err)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	ds := &Dataset{Tables: make(map[string][]store.Row, len(raw))}
	for _, table := range store.TableNames() {
		items, _ := raw[table].([]any)
		rows := make([]store.Row, 0, len(items))
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("seed: %s[%d]: not a mapping", table, i)
			}
			row := store.Row(obj)
			for field, v := range Defaults[table] {
				if _, present := row[field]; !present {
					row[field] = v
				}
			}
			rows = append(rows, row)
		}
		ds.Tables[table] = rows
	}
	return ds, nil
}

// validate unifies the decoded document with #Baseline.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("baseline.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("seed: compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Baseline"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("seed: lookup #Baseline: %w", err)
	}

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("seed: encode dataset: %w", err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("seed: invalid dataset: %s", cueerrors.Details(err, nil))
	}
	return nil
}
