package store

import (
	"context"
	"testing"
)

// createTestStore creates a new in-memory store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustExec builds and runs a statement, failing the test on error.
func mustInsert(t *testing.T, s *Store, table string, row Row) {
	t.Helper()
	stmt, err := Insert(table, row)
	if err != nil {
		t.Fatalf("Insert(%s) failed: %v", table, err)
	}
	if _, err := Exec(context.Background(), s.DB(), stmt); err != nil {
		t.Fatalf("Exec(%s) failed: %v", table, err)
	}
}

func testClient(id string) Row {
	return Row{
		"id":          id,
		"companyName": "Acme",
		"email":       "ops@acme.test",
		"status":      "Pending",
		"isVerified":  false,
	}
}
