package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "recruitdb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolate runs the test in an empty directory with no config env set.
func isolate(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{
		PathEnv,
		"RECRUITDB_STORE_PATH",
		"RECRUITDB_SNAPSHOT_KEY",
		"RECRUITDB_SEED_PATH",
		"RECRUITDB_LOG_LEVEL",
		"RECRUITDB_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

const validYAML = `
store:
  path: "/var/lib/recruitdb/state.db"
  snapshot_key: "agency.snapshot"

seed:
  path: "/etc/recruitdb/baseline.yaml"

log:
  level: "debug"
  format: "json"
`

func TestLoad_ValidYAML(t *testing.T) {
	isolate(t)
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/recruitdb/state.db", cfg.Store.Path)
	assert.Equal(t, "agency.snapshot", cfg.Store.SnapshotKey)
	assert.Equal(t, "/etc/recruitdb/baseline.yaml", cfg.Seed.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "recruitdb.db", cfg.Store.Path)
	assert.Equal(t, "recruitdb.snapshot", cfg.Store.SnapshotKey)
	assert.Empty(t, cfg.Seed.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	isolate(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	writeYAML(t, wd, "store:\n  path: local.db\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local.db", cfg.Store.Path)
}

func TestLoad_PathFromEnv(t *testing.T) {
	isolate(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv(PathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "agency.snapshot", cfg.Store.SnapshotKey)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	isolate(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("RECRUITDB_STORE_PATH", "/tmp/override.db")
	t.Setenv("RECRUITDB_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.Store.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err = Load("")
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	path := writeYAML(t, t.TempDir(), "store: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Store: StoreConfig{Path: "x.db", SnapshotKey: "k"},
			Log:   LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"level is case insensitive", func(c *Config) { c.Log.Level = "DEBUG" }, false},
		{"empty store path", func(c *Config) { c.Store.Path = "  " }, true},
		{"empty snapshot key", func(c *Config) { c.Store.SnapshotKey = "" }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
