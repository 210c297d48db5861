package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/recruitdb/internal/store"
)

type cliResult struct {
	stdout string
	stderr string
	code   int
}

// testStore returns a fresh durable store path and a config file that
// keeps logs quiet.
func testStore(t *testing.T) (dbPath, configPath string) {
	t.Helper()
	dir := t.TempDir()
	configPath = filepath.Join(dir, "recruitdb.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: error\n"), 0o644))
	return filepath.Join(dir, "recruitdb.db"), configPath
}

func runCLI(t *testing.T, dbPath, configPath string, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"--config", configPath, "--db", dbPath}, args...)
	code := Execute(context.Background(), full, &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func decodeData(t *testing.T, out string) map[string]any {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data should be an object: %s", out)
	return data
}

func TestStats_Text(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "stats")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Candidates")
	assert.Contains(t, res.stdout, "Outstanding amount       5950.00")
}

func TestStats_JSON(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "--format", "json", "stats")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	data := decodeData(t, res.stdout)
	assert.Equal(t, float64(5), data["candidates"])
	assert.Equal(t, float64(1), data["activeClients"])
}

func TestList(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "--format", "json", "list", store.TableClients)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	data := decodeData(t, res.stdout)
	assert.Equal(t, store.TableClients, data["table"])
	assert.Equal(t, float64(3), data["count"])

	rows, ok := data["rows"].([]any)
	require.True(t, ok)
	first, ok := rows[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "client-001", first["id"])

	res = runCLI(t, db, cfg, "list", store.TableAgents)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "agents: 2 rows")
	assert.Contains(t, res.stdout, `"id":"agent-001"`)
}

func TestList_UnknownTable(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "list", "users")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "invalid table")
}

func TestExport_IsDeterministic(t *testing.T) {
	dbA, cfgA := testStore(t)
	dbB, cfgB := testStore(t)

	a := runCLI(t, dbA, cfgA, "export")
	b := runCLI(t, dbB, cfgB, "export")
	require.Equal(t, ExitSuccess, a.code, a.stderr)
	require.Equal(t, ExitSuccess, b.code, b.stderr)
	assert.Equal(t, a.stdout, b.stdout)

	snap, err := store.UnmarshalSnapshot([]byte(a.stdout))
	require.NoError(t, err)
	assert.Len(t, snap, len(store.TableNames()))
	assert.Len(t, snap[store.TableCandidates], 5)
}

func TestExport_ToFile(t *testing.T) {
	db, cfg := testStore(t)
	out := filepath.Join(t.TempDir(), "snapshot.json")

	res := runCLI(t, db, cfg, "export", "-o", out)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Snapshot written to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	_, err = store.UnmarshalSnapshot(data)
	require.NoError(t, err)
}

func TestExport_JSONEmbedsSnapshot(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "--format", "json", "export")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	data := decodeData(t, res.stdout)
	assert.Contains(t, data, store.TableInvoices)
}

func TestWipeAndReset_PersistAcrossInvocations(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "--format", "json", "wipe")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	data := decodeData(t, res.stdout)
	tables := data["tables"].(map[string]any)
	assert.Equal(t, float64(0), tables[store.TableCandidates])
	assert.Equal(t, float64(2), tables[store.TableWebPages])

	// A new invocation reloads the wiped snapshot instead of reseeding.
	res = runCLI(t, db, cfg, "list", store.TableCandidates)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "candidates: 0 rows")

	res = runCLI(t, db, cfg, "reset")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "reset complete")

	res = runCLI(t, db, cfg, "list", store.TableCandidates)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "candidates: 5 rows")
}

func TestSession(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "session")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "admin      logged out")
	assert.Contains(t, res.stdout, "client     -")

	res = runCLI(t, db, cfg, "session", "login-admin")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	res = runCLI(t, db, cfg, "--format", "json", "session")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, true, decodeData(t, res.stdout)["admin"])

	res = runCLI(t, db, cfg, "session", "logout", "admin")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "admin      logged out")
}

func TestSession_InvalidRole(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "session", "logout", "superuser")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "invalid role")
}

func TestInvalidFormat(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "--format", "xml", "stats")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "invalid format")
}

func TestMissingConfigFile(t *testing.T) {
	db, _ := testStore(t)

	res := runCLI(t, db, filepath.Join(t.TempDir(), "absent.yaml"), "stats")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "failed to load config")
}

func TestErrorsAsJSON(t *testing.T) {
	db, cfg := testStore(t)

	res := runCLI(t, db, cfg, "--format", "json", "list", "users")
	assert.Equal(t, ExitCommandError, res.code)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E002", resp.Error.Code)
	assert.Equal(t, "invalid table", resp.Error.Message)
	assert.Contains(t, resp.Error.Cause, "users")
}

func TestCustomSeedDataset(t *testing.T) {
	db, _ := testStore(t)
	dir := t.TempDir()

	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
clients:
  - id: c1
    companyName: Acme
    email: ops@acme.test
    status: Pending
`), 0o644))
	cfg := filepath.Join(dir, "recruitdb.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: error\nseed:\n  path: "+seedPath+"\n"), 0o644))

	res := runCLI(t, db, cfg, "--format", "json", "stats")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	data := decodeData(t, res.stdout)
	assert.Equal(t, float64(1), data["clients"])
	assert.Equal(t, float64(0), data["candidates"])
}
