package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/recruitdb/internal/store"
)

func TestBaseline_Valid(t *testing.T) {
	ds, err := Baseline()
	require.NoError(t, err)

	for _, table := range store.TableNames() {
		assert.Contains(t, ds.Tables, table)
		assert.NotZero(t, ds.Count(table), "baseline seeds %s", table)
	}
	assert.Equal(t, 5, ds.Count(store.TableCandidates))
	assert.Equal(t, 3, ds.Count(store.TableClients))
}

func TestBaseline_IDsUniquePerTable(t *testing.T) {
	ds, err := Baseline()
	require.NoError(t, err)

	for table, rows := range ds.Tables {
		seen := map[string]bool{}
		for _, row := range rows {
			id := row.ID()
			require.NotEmpty(t, id, table)
			assert.False(t, seen[id], "duplicate id %s in %s", id, table)
			seen[id] = true
		}
	}
}

func TestBaseline_FixedDefaults(t *testing.T) {
	ds, err := Baseline()
	require.NoError(t, err)

	var cand store.Row
	for _, row := range ds.Tables[store.TableCandidates] {
		if row.ID() == "cand-004" {
			cand = row
		}
	}
	require.NotNil(t, cand, "cand-004 omits isVerified and completenessScore")
	assert.Equal(t, false, cand["isVerified"])
	assert.Equal(t, 50, cand["completenessScore"])
}

func TestBaseline_Deterministic(t *testing.T) {
	a, err := Baseline()
	require.NoError(t, err)
	b, err := Baseline()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"not yaml", "candidates: [unclosed"},
		{"list document", "- a\n- b\n"},
		{"unknown table", "widgets: []\n"},
		{"bad enum", "clients:\n  - {id: c1, companyName: Acme, email: a@b.c, status: Happy}\n"},
		{"missing id", "clients:\n  - {companyName: Acme, email: a@b.c, status: Active}\n"},
		{"score out of range", "candidates:\n  - {id: x, name: A, email: a@b.c, status: Available, completenessScore: 140}\n"},
		{"bad timestamp", "clients:\n  - {id: c1, companyName: Acme, email: a@b.c, status: Active, createdAt: yesterday}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_MinimalDocument(t *testing.T) {
	ds, err := Parse([]byte("clients:\n  - {id: c1, companyName: Acme, email: ops@acme.test, status: Pending}\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Count(store.TableClients))
	assert.Equal(t, 0, ds.Count(store.TableCandidates))
	assert.Equal(t, false, ds.Tables[store.TableClients][0]["isVerified"])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agents:\n  - {id: a1, agencyName: Link, email: a@link.test, status: Active}\n"), 0o644))

	ds, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Count(store.TableAgents))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
