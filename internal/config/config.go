// Package config loads recruitdb settings from YAML and the environment.
package config

// Config is the root configuration.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Seed  SeedConfig  `yaml:"seed"`
	Log   LogConfig   `yaml:"log"`
}

// StoreConfig locates the durable store.
type StoreConfig struct {
	Path        string `yaml:"path"         env:"RECRUITDB_STORE_PATH"   env-default:"recruitdb.db"`
	SnapshotKey string `yaml:"snapshot_key" env:"RECRUITDB_SNAPSHOT_KEY" env-default:"recruitdb.snapshot"`
}

// SeedConfig selects the baseline dataset. An empty path uses the embedded
// baseline.
type SeedConfig struct {
	Path string `yaml:"path" env:"RECRUITDB_SEED_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"RECRUITDB_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"RECRUITDB_LOG_FORMAT" env-default:"text"`
}
